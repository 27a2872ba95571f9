package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// EnvelopeCodec отвечает за шифрование контента ассета.
// Он не знает ничего о сети, леджере или IPFS.
//
// Схема работы:
//
//	Key      = GenerateKey()                        (creator, random key)
//	Envelope = Encrypt(plaintext, Key)              (ShapeCombined)
//	Envelope = EncryptWithPassword(plaintext, pwd)  (ShapeDetachedTag)
//	Plain    = Decrypt(Envelope, Key, shape)        (buyer)
type EnvelopeCodec interface {
	// GenerateKey returns a fresh 256-bit key from the OS CSPRNG.
	GenerateKey() Key

	// Encrypt seals plaintext with AES-256-GCM under a fresh random nonce
	// and returns nonce || ciphertext || tag.
	Encrypt(plaintext []byte, key Key) (Envelope, error)

	// Decrypt opens an envelope of the given shape. Every failure is
	// reported as ErrDecryption.
	Decrypt(env Envelope, key Key, shape Shape) ([]byte, error)

	// DeriveKeyFromPassword runs scrypt over password and salt. The same
	// inputs always yield the same key.
	DeriveKeyFromPassword(password, salt []byte, params KDFParams) (Key, error)

	// EncryptWithPassword produces a ShapeDetachedTag envelope with a fresh
	// random salt and nonce: salt || nonce || tag || ciphertext.
	EncryptWithPassword(plaintext, password []byte, params KDFParams) (Envelope, error)

	// DecryptWithPassword re-derives the key from the salt embedded in a
	// ShapeDetachedTag envelope and opens it.
	DecryptWithPassword(env Envelope, password []byte, params KDFParams) ([]byte, error)
}

// KeyChainService derives the credentials an account presents to the
// ledger. The password never leaves the client: only AuthHash does.
//
//	Salt     = GenerateSalt()                 (register)
//	Key      = DeriveAccountKey(pwd, Salt)    (register, login)
//	AuthHash = AuthHash(Key, domain)          (register, login)
type KeyChainService interface {
	GenerateSalt() ([]byte, error)
	DeriveAccountKey(password string, salt []byte) []byte
	AuthHash(accountKey []byte, domain string) []byte
}
