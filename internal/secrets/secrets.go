// Package secrets keeps credentials in the OS keychain: the IMAP password
// for the optional email source and API keys for pluggable enrichment
// providers. Nothing secret ever lands in the YAML config.
package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"leadradar-engine/internal/config"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "leadradar"

func IMAPAccount(cfg config.Config) string {
	return fmt.Sprintf(
		"leadradar:imap:%s@%s",
		cfg.Sources.Email.Username,
		cfg.Sources.Email.IMAPHost,
	)
}

func GetIMAPPassword(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("keyring account name is empty")
	}
	pw, err := keyring.Get(KeyringService, account)
	if err != nil || strings.TrimSpace(pw) == "" {
		return "", errors.New("IMAP password not found in keychain")
	}
	return pw, nil
}

func SetIMAPPassword(account, password string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, account, password)
}

func DeleteIMAPPassword(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}

func providerAccount(name string) string {
	return "leadradar:provider:" + strings.ToLower(strings.TrimSpace(name))
}

// GetProviderKey returns the stored API key for an enrichment provider.
func GetProviderKey(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("provider name is empty")
	}
	key, err := keyring.Get(KeyringService, providerAccount(name))
	if err != nil || strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("no API key stored for provider %q", name)
	}
	return key, nil
}

func SetProviderKey(name, key string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("provider name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, providerAccount(name), key)
}
