package sdk

type Asset string

const (
	AssetHive Asset = "hive"
	AssetHbd  Asset = "hbd"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetHive.String()
func (a Asset) String() string {
	return string(a)
}

// IsPayment reports whether the asset can be attached to a mint.
// Example payload: sdk.Asset("hbd").IsPayment()
func (a Asset) IsPayment() bool {
	return a == AssetHive || a == AssetHbd
}
