package carteira

// MaxWallets is the maximum number of wallets of an account.
const MaxWallets = 5

// Wallet groups orders under a name and a risk profile.
type Wallet struct {
	Code    Code
	Name    Name
	Profile Profile
	Owner   CPF
}

func (w Wallet) MarshalJSON() ([]byte, error) {
	var j jsonObjectWriter
	j.Append("code", w.Code)
	j.Append("name", w.Name)
	j.Append("profile", w.Profile)
	j.Optional("owner", w.Owner)
	return j.MarshalJSON()
}
