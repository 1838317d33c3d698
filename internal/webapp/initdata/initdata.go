// Package initdata проверяет подлинность строки Telegram.WebApp.initData,
// которую WebApp страница передаёт на сервер.
//
// Строка init data является URL-encoded набором пар key=value. Для проверки
// все пары, кроме подписи, сортируются по ключу и соединяются в check string
// вида "key=value\nkey=value". Поддерживаются две схемы:
//   - hash: HMAC-SHA256 с секретом, производным от токена бота;
//   - signature: Ed25519 подпись, проверяемая публичным ключом.
package initdata

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// secretKeyPrefix ключ HMAC для выработки секрета из токена бота
const secretKeyPrefix = "WebAppData"

// VerifyHMAC проверяет параметр hash строки init data
// Секрет: HMAC-SHA256(key="WebAppData", message=botToken)
// Ожидаемый hash: hex(HMAC-SHA256(key=секрет, message=check string))
func VerifyHMAC(initData string, botToken string) error {
	checkString, hash, err := extractCheckString(initData, "hash", ErrMissingHash)
	if err != nil {
		return err
	}

	secretMac := hmac.New(sha256.New, []byte(secretKeyPrefix))
	secretMac.Write([]byte(botToken))
	secretKey := secretMac.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(checkString))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return ErrSignatureMismatch
	}

	return nil
}

// VerifyEd25519 проверяет параметр signature строки init data
// Подпись передаётся в base64 и проверяется над той же check string
func VerifyEd25519(initData string, publicKey ed25519.PublicKey) error {
	if len(publicKey) != ed25519.PublicKeySize {
		return ErrInvalidPublicKey
	}

	checkString, signatureB64, err := extractCheckString(initData, "signature", ErrMissingSignature)
	if err != nil {
		return err
	}

	signature, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignatureEncoding, err)
	}

	if len(signature) != ed25519.SignatureSize {
		return ErrInvalidSignatureEncoding
	}

	if !ed25519.Verify(publicKey, []byte(checkString), signature) {
		return ErrSignatureMismatch
	}

	return nil
}

// extractCheckString разбирает init data и строит check string,
// исключая из неё поле подписи signatureField
func extractCheckString(initData string, signatureField string, missingErr error) (string, string, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	var signature string
	pairs := make([]string, 0, len(values))

	for key, vals := range values {
		if key == signatureField {
			if len(vals) > 0 {
				signature = vals[0]
			}
			continue
		}
		for _, v := range vals {
			pairs = append(pairs, key+"="+v)
		}
	}

	if signature == "" {
		return "", "", missingErr
	}

	sort.Strings(pairs)

	return strings.Join(pairs, "\n"), signature, nil
}
