package services

import (
	"errors"

	"github.com/99designs/keyring"
)

const DefaultKeyringService = "dbforge"

// CredentialStore keeps database passwords outside the settings file.
type CredentialStore interface {
	StorePassword(account, password string) error
	GetPassword(account string) (string, error)
	DeletePassword(account string) error
}

type KeyringService struct {
	ring keyring.Keyring
}

// OpenKeyring opens the OS credential store (Keychain, Credential Manager,
// Secret Service or KWallet, whichever the platform offers).
func OpenKeyring(serviceName string) (keyring.Keyring, error) {
	if serviceName == "" {
		serviceName = DefaultKeyringService
	}
	return keyring.Open(keyring.Config{
		ServiceName:              serviceName,
		KeychainTrustApplication: true,
		LibSecretCollectionName:  serviceName,
		KWalletAppID:             serviceName,
		KWalletFolder:            serviceName,
		WinCredPrefix:            serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.WinCredBackend,
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
		},
	})
}

func NewKeyringService(ring keyring.Keyring) *KeyringService {
	return &KeyringService{ring: ring}
}

func (s *KeyringService) StorePassword(account, password string) error {
	if account == "" {
		return errors.New("account is required")
	}
	if password == "" {
		return errors.New("password is empty")
	}
	return s.ring.Set(keyring.Item{
		Key:         account,
		Data:        []byte(password),
		Label:       "dbforge " + account,
		Description: "Database password used by dbforge",
	})
}

// GetPassword returns "" without error when nothing is stored for account.
func (s *KeyringService) GetPassword(account string) (string, error) {
	if account == "" {
		return "", errors.New("account is required")
	}
	item, err := s.ring.Get(account)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(item.Data), nil
}

func (s *KeyringService) DeletePassword(account string) error {
	if account == "" {
		return errors.New("account is required")
	}
	err := s.ring.Remove(account)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil
	}
	return err
}
