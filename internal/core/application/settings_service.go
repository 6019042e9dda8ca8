package application

import (
	"context"

	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/domain"
	"github.com/carlosfromnewyork-heyheyhey/trinity-wallet/internal/core/ports"
)

// SettingsService exposes the wallet settings singleton and the error log
// to the business layer. Each setter is a single-field read-modify-write
// in its own write scope. Values are stored as-is, out-of-range values are
// a caller concern.
type SettingsService interface {
	GetSettings(ctx context.Context) (*domain.WalletSettings, error)
	UpdateLocale(ctx context.Context, locale string) error
	UpdateCurrency(ctx context.Context, currency string) error
	UpdateTheme(ctx context.Context, theme string) error
	// UpdateSelectedNode stores the URL of the node to use, which must be
	// among the stored ones
	UpdateSelectedNode(ctx context.Context, url string) error
	SetRemotePoW(ctx context.Context, enabled bool) error
	Set2FA(ctx context.Context, enabled bool) error
	SetFingerprint(ctx context.Context, enabled bool) error
	AcceptTerms(ctx context.Context) error
	AcceptPrivacy(ctx context.Context) error
	SetHideEmptyTransactions(ctx context.Context, hide bool) error
	UpdateNotificationsSettings(
		ctx context.Context, notifications domain.NotificationsSettings,
	) error
	GetErrorLog(ctx context.Context) ([]string, error)
	PushErrorLog(ctx context.Context, msg string) error
	ClearErrorLog(ctx context.Context) error
}

type settingsService struct {
	repoManager ports.RepoManager
}

func NewSettingsService(repoManager ports.RepoManager) SettingsService {
	return &settingsService{repoManager}
}

func (s *settingsService) GetSettings(
	ctx context.Context,
) (*domain.WalletSettings, error) {
	return s.repoManager.WalletRepository().GetSettings(ctx)
}

func (s *settingsService) UpdateLocale(ctx context.Context, locale string) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.Locale = locale
	})
}

func (s *settingsService) UpdateCurrency(ctx context.Context, currency string) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.Currency = currency
	})
}

func (s *settingsService) UpdateTheme(ctx context.Context, theme string) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.Theme = theme
	})
}

func (s *settingsService) UpdateSelectedNode(ctx context.Context, url string) error {
	_, err := s.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			node, err := s.repoManager.NodeRepository().GetNode(ctx, url)
			if err != nil {
				return nil, err
			}
			if node == nil {
				return nil, domain.ErrNodeNotFound
			}

			return nil, s.repoManager.WalletRepository().UpdateSettings(
				ctx,
				func(settings *domain.WalletSettings) (*domain.WalletSettings, error) {
					settings.SelectedNodeURL = url
					return settings, nil
				},
			)
		},
	)
	return err
}

func (s *settingsService) SetRemotePoW(ctx context.Context, enabled bool) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.RemotePoW = enabled
	})
}

func (s *settingsService) Set2FA(ctx context.Context, enabled bool) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.Is2FAEnabled = enabled
	})
}

func (s *settingsService) SetFingerprint(ctx context.Context, enabled bool) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.IsFingerprintEnabled = enabled
	})
}

func (s *settingsService) AcceptTerms(ctx context.Context) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.AcceptedTerms = true
	})
}

func (s *settingsService) AcceptPrivacy(ctx context.Context) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.AcceptedPrivacy = true
	})
}

func (s *settingsService) SetHideEmptyTransactions(
	ctx context.Context, hide bool,
) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.HideEmptyTransactions = hide
	})
}

func (s *settingsService) UpdateNotificationsSettings(
	ctx context.Context, notifications domain.NotificationsSettings,
) error {
	return s.updateSettings(ctx, func(settings *domain.WalletSettings) {
		settings.Notifications = notifications
	})
}

func (s *settingsService) GetErrorLog(ctx context.Context) ([]string, error) {
	wallet, err := s.repoManager.WalletRepository().GetWallet(ctx)
	if err != nil {
		return nil, err
	}
	return wallet.ErrorLog, nil
}

func (s *settingsService) PushErrorLog(ctx context.Context, msg string) error {
	return s.updateWallet(ctx, func(wallet *domain.Wallet) {
		wallet.PushError(msg)
	})
}

func (s *settingsService) ClearErrorLog(ctx context.Context) error {
	return s.updateWallet(ctx, func(wallet *domain.Wallet) {
		wallet.ClearErrorLog()
	})
}

func (s *settingsService) updateSettings(
	ctx context.Context, apply func(settings *domain.WalletSettings),
) error {
	_, err := s.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.WalletRepository().UpdateSettings(
				ctx,
				func(settings *domain.WalletSettings) (*domain.WalletSettings, error) {
					apply(settings)
					return settings, nil
				},
			)
		},
	)
	return err
}

func (s *settingsService) updateWallet(
	ctx context.Context, apply func(wallet *domain.Wallet),
) error {
	_, err := s.repoManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, s.repoManager.WalletRepository().UpdateWallet(
				ctx,
				func(wallet *domain.Wallet) (*domain.Wallet, error) {
					apply(wallet)
					return wallet, nil
				},
			)
		},
	)
	return err
}
