// Package telegram возможности хоста Telegram Mini App: личность пользователя
// и подтверждение записи. Для каждой есть реализация для бота и локальная заглушка
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// MockUser пользователь локальной заглушки
var MockUser = domain.TelegramUser{
	ID:           123456789,
	FirstName:    "Тест",
	LastName:     "Пользователь",
	Username:     "testuser",
	LanguageCode: "ru",
}

// InitDataValidator проверяет подпись init data Mini App ключом бота
type InitDataValidator struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewInitDataValidator maxAge = 0 отключает проверку давности
func NewInitDataValidator(botToken string, maxAge time.Duration) *InitDataValidator {
	return &InitDataValidator{
		secret: webAppSecret(botToken),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Resolve проверяет подпись и возвращает пользователя из поля user
func (v *InitDataValidator) Resolve(initData string) (*domain.TelegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, fmt.Errorf("%w: hash is missing", ErrInvalidInitData)
	}

	expected := signDataCheckString(v.secret, dataCheckString(values))
	if !hmac.Equal([]byte(hash), []byte(expected)) {
		return nil, fmt.Errorf("%w: signature mismatch", ErrInvalidInitData)
	}

	if v.maxAge > 0 {
		authDate, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: auth_date: %v", ErrInvalidInitData, err)
		}
		if v.now().Sub(time.Unix(authDate, 0)) > v.maxAge {
			return nil, ErrExpiredInitData
		}
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, ErrNoUser
	}

	var user domain.TelegramUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: user: %v", ErrInvalidInitData, err)
	}
	return &user, nil
}

// LocalIdentity заглушка вне Telegram: всегда тестовый пользователь
type LocalIdentity struct{}

func (LocalIdentity) Resolve(string) (*domain.TelegramUser, error) {
	u := MockUser
	return &u, nil
}

// SignInitData подписывает набор полей так же, как это делает Telegram
func SignInitData(botToken string, values url.Values) string {
	signed := url.Values{}
	for k, v := range values {
		if k != "hash" {
			signed[k] = v
		}
	}
	signed.Set("hash", signDataCheckString(webAppSecret(botToken), dataCheckString(signed)))
	return signed.Encode()
}

// dataCheckString отсортированные пары key=value без hash, через перевод строки
func dataCheckString(values url.Values) string {
	pairs := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		pairs = append(pairs, k+"="+values.Get(k))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "\n")
}

func webAppSecret(botToken string) []byte {
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	return mac.Sum(nil)
}

func signDataCheckString(secret []byte, data string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
