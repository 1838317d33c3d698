package initdata

import "errors"

var (
	// ErrMissingHash возвращается, когда в init data нет параметра hash
	ErrMissingHash = errors.New("initdata: missing hash parameter")

	// ErrMissingSignature возвращается, когда в init data нет параметра signature
	ErrMissingSignature = errors.New("initdata: missing signature parameter")

	// ErrInvalidEncoding возвращается при некорректном URL-кодировании init data
	ErrInvalidEncoding = errors.New("initdata: invalid encoding")

	// ErrInvalidSignatureEncoding возвращается, когда подпись не декодируется из base64
	ErrInvalidSignatureEncoding = errors.New("initdata: invalid signature encoding")

	// ErrSignatureMismatch возвращается при несовпадении подписи
	ErrSignatureMismatch = errors.New("initdata: signature mismatch")

	// ErrInvalidPublicKey возвращается при некорректном Ed25519 публичном ключе
	ErrInvalidPublicKey = errors.New("initdata: invalid public key")
)
