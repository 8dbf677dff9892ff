package model

// FirmSize buckets a firm for detail-level recommendation.
type FirmSize string

const (
	FirmSmall  FirmSize = "small"
	FirmMedium FirmSize = "medium"
	FirmLarge  FirmSize = "large"
)

// PermissionSet holds the FCA permission flags a firm operates under.
// These drive which policy templates the firm must hold and which
// clauses apply to it.
type PermissionSet struct {
	AcceptsDeposits    bool `json:"accepts_deposits" yaml:"accepts_deposits"`
	HoldsClientMoney   bool `json:"holds_client_money" yaml:"holds_client_money"`
	PaymentServices    bool `json:"payment_services" yaml:"payment_services"`
	EMoneyIssuance     bool `json:"e_money_issuance" yaml:"e_money_issuance"`
	InsuranceMediation bool `json:"insurance_mediation" yaml:"insurance_mediation"`
	CreditBroking      bool `json:"credit_broking" yaml:"credit_broking"`
	RetailClients      bool `json:"retail_clients" yaml:"retail_clients"`
}

// PermissionRequired is a partial predicate over a firm's permissions.
// A clause carrying one only applies when every set field matches the
// firm. Nil pointers mean "don't care".
type PermissionRequired struct {
	AcceptsDeposits    *bool `json:"accepts_deposits,omitempty" yaml:"accepts_deposits,omitempty"`
	HoldsClientMoney   *bool `json:"holds_client_money,omitempty" yaml:"holds_client_money,omitempty"`
	PaymentServices    *bool `json:"payment_services,omitempty" yaml:"payment_services,omitempty"`
	EMoneyIssuance     *bool `json:"e_money_issuance,omitempty" yaml:"e_money_issuance,omitempty"`
	InsuranceMediation *bool `json:"insurance_mediation,omitempty" yaml:"insurance_mediation,omitempty"`
	CreditBroking      *bool `json:"credit_broking,omitempty" yaml:"credit_broking,omitempty"`
	RetailClients      *bool `json:"retail_clients,omitempty" yaml:"retail_clients,omitempty"`
}

// MatchedBy reports whether the firm's permissions satisfy the predicate.
func (pr *PermissionRequired) MatchedBy(ps PermissionSet) bool {
	if pr == nil {
		return true
	}
	checks := []struct {
		want *bool
		have bool
	}{
		{pr.AcceptsDeposits, ps.AcceptsDeposits},
		{pr.HoldsClientMoney, ps.HoldsClientMoney},
		{pr.PaymentServices, ps.PaymentServices},
		{pr.EMoneyIssuance, ps.EMoneyIssuance},
		{pr.InsuranceMediation, ps.InsuranceMediation},
		{pr.CreditBroking, ps.CreditBroking},
		{pr.RetailClients, ps.RetailClients},
	}
	for _, c := range checks {
		if c.want != nil && *c.want != c.have {
			return false
		}
	}
	return true
}

// FirmProfile identifies the firm a document is generated for.
type FirmProfile struct {
	Name        string        `json:"name" yaml:"name"`
	FRN         string        `json:"frn" yaml:"frn"`
	Size        FirmSize      `json:"size" yaml:"size"`
	Permissions PermissionSet `json:"permissions" yaml:"permissions"`
}
