package entity

type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderMicrosoft Provider = "microsoft"
)

func (p Provider) IsValid() bool {
	switch p {
	case ProviderGoogle, ProviderMicrosoft:
		return true
	}

	return false
}

type OAuthProfile struct {
	Email     string
	FirstName string
	LastName  string
	Provider  Provider
}
