// Package domain defines the models shared by the gateway core and its adapters.
package domain

// Credentials identify the billing site the gateway talks to.
type Credentials struct {
	Subdomain string
	APIKey    string
}

// Validate rejects credentials with a blank subdomain or api key.
func (c Credentials) Validate() error {
	if c.Subdomain == "" {
		return NewMissingRequiredFieldError("subdomain")
	}
	if c.APIKey == "" {
		return NewMissingRequiredFieldError("api_key")
	}
	return nil
}

type Country struct {
	Name string
}

type State struct {
	Name string
}

// Address is an order's bill address as owned by the storefront.
type Address struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	Zipcode   string
	State     *State
	Country   *Country
}

// StateName returns the state's name, or "" when the address has no state.
func (a *Address) StateName() string {
	if a.State == nil {
		return ""
	}
	return a.State.Name
}

// CountryName returns the country's name, or "" when the address has no country.
func (a *Address) CountryName() string {
	if a.Country == nil {
		return ""
	}
	return a.Country.Name
}

type User struct {
	ID string
}

type Order struct {
	Email       string
	BillAddress *Address
	User        *User
}

// CreditCard is the storefront's card. GatewayCustomerProfileID is nil until
// the first successful account creation and never changes afterwards.
type CreditCard struct {
	ID                       string
	Number                   string
	VerificationValue        string
	Month                    string
	Year                     string
	GatewayCustomerProfileID *string
}

// HasProfile reports whether an account has already been created for the card.
func (c *CreditCard) HasProfile() bool {
	return c != nil && c.GatewayCustomerProfileID != nil && *c.GatewayCustomerProfileID != ""
}

// ProfileID returns the stored profile id, or "" when none is set.
func (c *CreditCard) ProfileID() string {
	if !c.HasProfile() {
		return ""
	}
	return *c.GatewayCustomerProfileID
}

// Payment pairs a card with the order it pays for.
type Payment struct {
	Source *CreditCard
	Order  *Order
}

// Options carries per-call settings supplied by the storefront.
type Options struct {
	Currency    string
	Description string
}

const DefaultCurrency = "USD"

// CurrencyOrDefault returns the requested currency, falling back to USD.
func (o Options) CurrencyOrDefault() string {
	if o.Currency == "" {
		return DefaultCurrency
	}
	return o.Currency
}
