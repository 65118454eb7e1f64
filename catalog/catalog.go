package catalog

import "github.com/hashscope/hashscope/types"

func bound(v int) *int { return &v }

// saltParam is the salt input shared by the password-hashing schemas.
func saltParam() types.ParameterSpec {
	return types.ParameterSpec{
		ID:             "salt",
		Label:          "Salt",
		Kind:           types.ParamText,
		Required:       true,
		GenerateRandom: true,
	}
}

// keyParam is the secret-key input shared by the MAC schemas.
func keyParam() types.ParameterSpec {
	return types.ParameterSpec{
		ID:             "key",
		Label:          "Secret key",
		Kind:           types.ParamText,
		Required:       true,
		GenerateRandom: true,
	}
}

// algorithms is the static catalog the default registry is built from.
// Order matters: it is the registration order exposed by ListByCategory.
var algorithms = []types.AlgorithmDescriptor{
	// Cryptographic hash functions.
	{
		ID:                "md5",
		DisplayName:       "MD5",
		Description:       "Legacy 128-bit digest. Broken for collision resistance; kept for checksumming and interoperability only.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 16,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "sha1",
		DisplayName:       "SHA-1",
		Description:       "Legacy 160-bit digest. Collision attacks are practical; avoid for new designs.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 20,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "sha224",
		DisplayName:       "SHA-224",
		Description:       "SHA-2 family digest truncated to 224 bits.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 28,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "sha256",
		DisplayName:       "SHA-256",
		Description:       "The workhorse SHA-2 digest: 256 bits, ubiquitous in integrity checking and content addressing.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 32,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "sha384",
		DisplayName:       "SHA-384",
		Description:       "SHA-2 family digest truncated to 384 bits, computed with the 64-bit SHA-512 pipeline.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 48,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "sha512",
		DisplayName:       "SHA-512",
		Description:       "64-bit-word SHA-2 digest producing 512 bits.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 64,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "sha512-256",
		DisplayName:       "SHA-512/256",
		Description:       "SHA-512 with distinct initial values truncated to 256 bits; resistant to length-extension.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 32,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "sha3-256",
		DisplayName:       "SHA3-256",
		Description:       "Keccak-based NIST FIPS 202 digest, 256 bits.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 32,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "sha3-512",
		DisplayName:       "SHA3-512",
		Description:       "Keccak-based NIST FIPS 202 digest, 512 bits.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 64,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "keccak256",
		DisplayName:       "Keccak-256",
		Description:       "Pre-standardization Keccak with the original padding, as used by Ethereum.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 32,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "blake2b-256",
		DisplayName:       "BLAKE2b-256",
		Description:       "Fast 64-bit-platform digest (RFC 7693) at 256 bits; supports keyed operation.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 32,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "blake2b-512",
		DisplayName:       "BLAKE2b-512",
		Description:       "BLAKE2b at its full 512-bit output length.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 64,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "blake2s-256",
		DisplayName:       "BLAKE2s-256",
		Description:       "BLAKE2 variant optimized for 8- to 32-bit platforms.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 32,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:          "blake3",
		DisplayName: "BLAKE3",
		Description: "Merkle-tree successor to BLAKE2 with unbounded extendable output; defaults to 256 bits.",
		Category:    CategoryCryptographic,
		Family:      types.FamilyStandardDigest,
		Parameters: []types.ParameterSpec{
			{
				ID:       "length",
				Label:    "Output length (bytes)",
				Kind:     types.ParamNumber,
				Min:      bound(1),
				Max:      bound(1024),
				Default:  "32",
				Required: false,
			},
		},
	},
	{
		ID:                "ripemd160",
		DisplayName:       "RIPEMD-160",
		Description:       "160-bit digest surviving mainly in Bitcoin address derivation.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 20,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "whirlpool",
		DisplayName:       "Whirlpool",
		Description:       "512-bit AES-derived digest standardized in ISO/IEC 10118-3.",
		Category:          CategoryCryptographic,
		OutputLengthBytes: 64,
		Family:            types.FamilyStandardDigest,
	},

	// Checksums.
	{
		ID:                "crc32",
		DisplayName:       "CRC-32",
		Description:       "IEEE 802.3 cyclic redundancy check, 32 bits.",
		Category:          CategoryChecksums,
		OutputLengthBytes: 4,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "crc32c",
		DisplayName:       "CRC-32C",
		Description:       "Castagnoli CRC-32 polynomial, hardware-accelerated on modern CPUs.",
		Category:          CategoryChecksums,
		OutputLengthBytes: 4,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "crc64",
		DisplayName:       "CRC-64",
		Description:       "64-bit cyclic redundancy check (ECMA polynomial).",
		Category:          CategoryChecksums,
		OutputLengthBytes: 8,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "adler32",
		DisplayName:       "Adler-32",
		Description:       "Fast rolling checksum from zlib; weaker than CRC-32 for short inputs.",
		Category:          CategoryChecksums,
		OutputLengthBytes: 4,
		Family:            types.FamilyStandardDigest,
	},

	// Non-cryptographic hash functions.
	{
		ID:                "fnv1a-32",
		DisplayName:       "FNV-1a (32-bit)",
		Description:       "Simple multiply-xor hash; a common default for small hash tables.",
		Category:          CategoryNonCryptographic,
		OutputLengthBytes: 4,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "fnv1a-64",
		DisplayName:       "FNV-1a (64-bit)",
		Description:       "64-bit variant of FNV-1a.",
		Category:          CategoryNonCryptographic,
		OutputLengthBytes: 8,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "xxhash64",
		DisplayName:       "xxHash64",
		Description:       "Extremely fast 64-bit hash for checksumming and deduplication.",
		Category:          CategoryNonCryptographic,
		OutputLengthBytes: 8,
		Family:            types.FamilyStandardDigest,
		Parameters: []types.ParameterSpec{
			{
				ID:      "seed",
				Label:   "Seed",
				Kind:    types.ParamNumber,
				Min:     bound(0),
				Default: "0",
			},
		},
	},
	{
		ID:                "xxh3-64",
		DisplayName:       "XXH3 (64-bit)",
		Description:       "Latest xxHash generation with improved small-input performance.",
		Category:          CategoryNonCryptographic,
		OutputLengthBytes: 8,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "murmur3-32",
		DisplayName:       "MurmurHash3 (32-bit)",
		Description:       "Widely deployed general-purpose hash; the classic choice for Bloom filters.",
		Category:          CategoryNonCryptographic,
		OutputLengthBytes: 4,
		Family:            types.FamilyStandardDigest,
		Parameters: []types.ParameterSpec{
			{
				ID:      "seed",
				Label:   "Seed",
				Kind:    types.ParamNumber,
				Min:     bound(0),
				Default: "0",
			},
		},
	},
	{
		ID:                "murmur3-128",
		DisplayName:       "MurmurHash3 (128-bit)",
		Description:       "128-bit MurmurHash3 variant.",
		Category:          CategoryNonCryptographic,
		OutputLengthBytes: 16,
		Family:            types.FamilyStandardDigest,
	},
	{
		ID:                "siphash-2-4",
		DisplayName:       "SipHash-2-4",
		Description:       "Keyed short-input hash hardening hash tables against flooding attacks.",
		Category:          CategoryNonCryptographic,
		OutputLengthBytes: 8,
		Family:            types.FamilyMAC,
		Parameters:        []types.ParameterSpec{keyParam()},
	},

	// Password hashing / KDFs.
	{
		ID:          "bcrypt",
		DisplayName: "bcrypt",
		Description: "Blowfish-based password hash with a tunable cost factor.",
		Category:    CategoryPasswordHashing,
		Family:      types.FamilyPasswordKDF,
		Parameters: []types.ParameterSpec{
			{
				ID:       "cost",
				Label:    "Cost factor",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(4),
				Max:      bound(31),
				Default:  "12",
			},
		},
	},
	{
		ID:          "scrypt",
		DisplayName: "scrypt",
		Description: "Memory-hard KDF; cost scales in both CPU and memory.",
		Category:    CategoryPasswordHashing,
		Family:      types.FamilyPasswordKDF,
		Parameters: []types.ParameterSpec{
			saltParam(),
			{
				ID:       "n",
				Label:    "CPU/memory cost (N)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(2),
				Default:  "32768",
			},
			{
				ID:       "r",
				Label:    "Block size (r)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Default:  "8",
			},
			{
				ID:       "p",
				Label:    "Parallelism (p)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Default:  "1",
			},
		},
	},
	{
		ID:          "argon2i",
		DisplayName: "Argon2i",
		Description: "Argon2 variant with data-independent memory access, suited to side-channel-sensitive settings.",
		Category:    CategoryPasswordHashing,
		Family:      types.FamilyPasswordKDF,
		Parameters: []types.ParameterSpec{
			saltParam(),
			{
				ID:       "time",
				Label:    "Iterations",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Default:  "3",
			},
			{
				ID:       "memory",
				Label:    "Memory (KiB)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(8),
				Default:  "65536",
			},
			{
				ID:       "parallelism",
				Label:    "Parallelism",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Max:      bound(255),
				Default:  "4",
			},
		},
	},
	{
		ID:          "argon2id",
		DisplayName: "Argon2id",
		Description: "Hybrid Argon2 variant and the current password-hashing recommendation.",
		Category:    CategoryPasswordHashing,
		Family:      types.FamilyPasswordKDF,
		Parameters: []types.ParameterSpec{
			saltParam(),
			{
				ID:       "time",
				Label:    "Iterations",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Default:  "3",
			},
			{
				ID:       "memory",
				Label:    "Memory (KiB)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(8),
				Default:  "65536",
			},
			{
				ID:       "parallelism",
				Label:    "Parallelism",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Max:      bound(255),
				Default:  "4",
			},
		},
	},
	{
		ID:          "pbkdf2-sha256",
		DisplayName: "PBKDF2-HMAC-SHA256",
		Description: "Iterated HMAC key derivation (RFC 8018); widely supported but not memory-hard.",
		Category:    CategoryPasswordHashing,
		Family:      types.FamilyPasswordKDF,
		Parameters: []types.ParameterSpec{
			saltParam(),
			{
				ID:       "iterations",
				Label:    "Iterations",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1000),
				Default:  "600000",
			},
		},
	},
	{
		ID:          "pbkdf2-sha512",
		DisplayName: "PBKDF2-HMAC-SHA512",
		Description: "PBKDF2 over HMAC-SHA512.",
		Category:    CategoryPasswordHashing,
		Family:      types.FamilyPasswordKDF,
		Parameters: []types.ParameterSpec{
			saltParam(),
			{
				ID:       "iterations",
				Label:    "Iterations",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1000),
				Default:  "210000",
			},
		},
	},

	// Message authentication codes.
	{
		ID:                "hmac-sha1",
		DisplayName:       "HMAC-SHA1",
		Description:       "HMAC over SHA-1; still common in legacy API signatures.",
		Category:          CategoryMAC,
		OutputLengthBytes: 20,
		Family:            types.FamilyMAC,
		Parameters:        []types.ParameterSpec{keyParam()},
	},
	{
		ID:                "hmac-sha256",
		DisplayName:       "HMAC-SHA256",
		Description:       "The standard choice for message authentication (RFC 2104 over SHA-256).",
		Category:          CategoryMAC,
		OutputLengthBytes: 32,
		Family:            types.FamilyMAC,
		Parameters:        []types.ParameterSpec{keyParam()},
	},
	{
		ID:                "hmac-sha512",
		DisplayName:       "HMAC-SHA512",
		Description:       "HMAC over SHA-512.",
		Category:          CategoryMAC,
		OutputLengthBytes: 64,
		Family:            types.FamilyMAC,
		Parameters:        []types.ParameterSpec{keyParam()},
	},
	{
		ID:                "poly1305",
		DisplayName:       "Poly1305",
		Description:       "One-time authenticator; the key must never be reused across messages.",
		Category:          CategoryMAC,
		OutputLengthBytes: 16,
		Family:            types.FamilyMAC,
		Parameters:        []types.ParameterSpec{keyParam()},
	},
	{
		ID:          "kmac128",
		DisplayName: "KMAC128",
		Description: "Keccak-based MAC from NIST SP 800-185 with selectable output length.",
		Category:    CategoryMAC,
		Family:      types.FamilyMAC,
		Parameters: []types.ParameterSpec{
			keyParam(),
			{
				ID:      "length",
				Label:   "Output length (bytes)",
				Kind:    types.ParamNumber,
				Min:     bound(1),
				Max:     bound(1024),
				Default: "32",
			},
		},
	},

	// Similarity / locality-sensitive hashing. These are the only
	// algorithms the comparator can score.
	{
		ID:                "simhash",
		DisplayName:       "SimHash",
		Description:       "Charikar's random-hyperplane fingerprint: near-duplicate documents land within a few bits of each other.",
		Category:          CategorySimilarity,
		OutputLengthBytes: 8,
		Family:            types.FamilySimilarity,
		Parameters: []types.ParameterSpec{
			{
				ID:      "shingle",
				Label:   "Shingle size",
				Kind:    types.ParamNumber,
				Min:     bound(1),
				Max:     bound(16),
				Default: "2",
			},
		},
		SupportsComparison: true,
	},
	{
		ID:          "minhash",
		DisplayName: "MinHash",
		Description: "Broder's minimizer signature: position-wise agreement between two signatures estimates Jaccard similarity.",
		Category:    CategorySimilarity,
		Family:      types.FamilySimilarity,
		Parameters: []types.ParameterSpec{
			{
				ID:       "hashes",
				Label:    "Signature size (hash functions)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Max:      bound(4096),
				Default:  "128",
			},
			{
				ID:             "seed",
				Label:          "Seed",
				Kind:           types.ParamNumber,
				Min:            bound(0),
				Default:        "1",
				GenerateRandom: true,
			},
		},
		SupportsComparison: true,
	},
	{
		ID:          "bbit-minhash",
		DisplayName: "b-bit MinHash",
		Description: "MinHash storing only the lowest b bits per minimizer, trading accuracy for a much smaller signature.",
		Category:    CategorySimilarity,
		Family:      types.FamilySimilarity,
		Parameters: []types.ParameterSpec{
			{
				ID:       "hashes",
				Label:    "Signature size (hash functions)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Max:      bound(4096),
				Default:  "128",
			},
			{
				ID:       "bits",
				Label:    "Bits per hash (b)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Max:      bound(32),
				Default:  "4",
			},
		},
		SupportsComparison: true,
	},
	{
		ID:          "superminhash",
		DisplayName: "SuperMinHash",
		Description: "MinHash variant with lower estimator variance at the same signature size.",
		Category:    CategorySimilarity,
		Family:      types.FamilySimilarity,
		Parameters: []types.ParameterSpec{
			{
				ID:       "hashes",
				Label:    "Signature size (hash functions)",
				Kind:     types.ParamNumber,
				Required: true,
				Min:      bound(1),
				Max:      bound(4096),
				Default:  "128",
			},
		},
		SupportsComparison: true,
	},
	{
		ID:                 "nilsimsa",
		DisplayName:        "Nilsimsa",
		Description:        "Trigram-accumulator hash for near-duplicate text and spam detection; compared via a correlation score.",
		Category:           CategorySimilarity,
		OutputLengthBytes:  32,
		Family:             types.FamilySimilarity,
		SupportsComparison: true,
	},
	{
		ID:                 "imatch",
		DisplayName:        "I-Match",
		Description:        "Lexicon-filtered single-fingerprint scheme for duplicate document detection.",
		Category:          CategorySimilarity,
		OutputLengthBytes: 8,
		Family:            types.FamilySimilarity,
		Parameters: []types.ParameterSpec{
			{
				ID:    "lexicon",
				Label: "Lexicon terms (one per line)",
				Kind:  types.ParamMultiline,
			},
		},
		SupportsComparison: true,
	},
	{
		ID:                 "tlsh",
		DisplayName:        "TLSH",
		Description:        "Trend Micro locality-sensitive hash used for malware clustering.",
		Category:           CategorySimilarity,
		OutputLengthBytes:  35,
		Family:             types.FamilySimilarity,
		SupportsComparison: true,
	},
}
