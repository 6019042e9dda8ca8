package domain

// NotificationsSettings groups the notification toggles embedded in the
// wallet settings
type NotificationsSettings struct {
	General       bool
	Confirmations bool
	Messages      bool
}

// WalletSettings is the settings sub-record embedded in the Wallet
// singleton. Values are stored as-is, validation is up to callers.
type WalletSettings struct {
	Locale                string
	Currency              string
	Theme                 string
	SelectedNodeURL       string
	RemotePoW             bool
	Is2FAEnabled          bool
	IsFingerprintEnabled  bool
	AcceptedTerms         bool
	AcceptedPrivacy       bool
	HideEmptyTransactions bool
	Notifications         NotificationsSettings
}

// Wallet is the singleton record holding the settings and the error log
// for one schema version. Exactly one row is expected for SchemaVersion
// at any time, enforced by CreateIfNotExists being the sole creation path.
type Wallet struct {
	Version  int
	Settings WalletSettings
	ErrorLog []string
}

// NewWallet returns a Wallet for the current schema version with default
// settings and an empty error log
func NewWallet() *Wallet {
	return &Wallet{
		Version: SchemaVersion,
		Settings: WalletSettings{
			Locale:   DefaultLocale,
			Currency: DefaultCurrency,
			Theme:    DefaultTheme,
		},
		ErrorLog: []string{},
	}
}

// PushError appends a message to the wallet error log
func (w *Wallet) PushError(msg string) {
	w.ErrorLog = append(w.ErrorLog, msg)
}

// ClearErrorLog empties the wallet error log
func (w *Wallet) ClearErrorLog() {
	w.ErrorLog = []string{}
}
