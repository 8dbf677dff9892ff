// Package forms defines the FCA approved-persons form schemas (Form A,
// C, D, E and the PSD Individual Form) as static data: ordered steps of
// field specifications, consumed by UI layers and validated here.
package forms

// FormKind identifies one of the supported FCA forms.
type FormKind string

const (
	FormA         FormKind = "form-a"
	FormC         FormKind = "form-c"
	FormD         FormKind = "form-d"
	FormE         FormKind = "form-e"
	FormPSDIndivi FormKind = "psd-individual"
)

// FieldKind is the input type of a form field.
type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldDate   FieldKind = "date"
	FieldSelect FieldKind = "select"
	FieldBool   FieldKind = "bool"
	FieldFRN    FieldKind = "frn"
	FieldNINO   FieldKind = "nino"
)

// FieldSpec describes one input within a form step.
type FieldSpec struct {
	Key        string    `json:"key"`
	Label      string    `json:"label"`
	Kind       FieldKind `json:"kind"`
	Required   bool      `json:"required"`
	Options    []string  `json:"options,omitempty"`
	DependsOn  string    `json:"depends_on,omitempty"`
	DependsVal string    `json:"depends_val,omitempty"`
}

// FormStep is one page of a multi-step form.
type FormStep struct {
	Title  string      `json:"title"`
	Fields []FieldSpec `json:"fields"`
}

// Form is a complete multi-step form definition.
type Form struct {
	Kind  FormKind   `json:"kind"`
	Name  string     `json:"name"`
	Steps []FormStep `json:"steps"`
}

// Submission carries the values entered for one step, keyed by field key.
type Submission map[string]string

// All returns every supported form definition, in display order.
func All() []Form {
	return []Form{formA(), formC(), formD(), formE(), formPSD()}
}

// ByKind returns one form definition.
func ByKind(kind FormKind) (Form, bool) {
	for _, f := range All() {
		if f.Kind == kind {
			return f, true
		}
	}
	return Form{}, false
}

var smfOptions = []string{
	"SMF1 - Chief Executive",
	"SMF3 - Executive Director",
	"SMF16 - Compliance Oversight",
	"SMF17 - Money Laundering Reporting Officer",
	"SMF27 - Partner",
}

func identityFields() []FieldSpec {
	return []FieldSpec{
		{Key: "candidate_name", Label: "Full name", Kind: FieldText, Required: true},
		{Key: "candidate_dob", Label: "Date of birth", Kind: FieldDate, Required: true},
		{Key: "candidate_nino", Label: "National Insurance number", Kind: FieldNINO, Required: true},
	}
}

func firmFields() []FieldSpec {
	return []FieldSpec{
		{Key: "firm_name", Label: "Firm name", Kind: FieldText, Required: true},
		{Key: "firm_frn", Label: "Firm reference number", Kind: FieldFRN, Required: true},
	}
}

func formA() Form {
	return Form{
		Kind: FormA,
		Name: "Form A: Application to perform senior management functions",
		Steps: []FormStep{
			{Title: "Firm details", Fields: firmFields()},
			{Title: "Candidate details", Fields: identityFields()},
			{Title: "Function applied for", Fields: []FieldSpec{
				{Key: "function", Label: "Senior management function", Kind: FieldSelect, Required: true, Options: smfOptions},
				{Key: "effective_date", Label: "Proposed effective date", Kind: FieldDate, Required: true},
			}},
			{Title: "Fitness and propriety", Fields: []FieldSpec{
				{Key: "criminal_history", Label: "Any criminal proceedings to disclose", Kind: FieldBool, Required: true},
				{Key: "criminal_detail", Label: "Details of proceedings", Kind: FieldText, DependsOn: "criminal_history", DependsVal: "true"},
				{Key: "regulatory_history", Label: "Any regulatory findings to disclose", Kind: FieldBool, Required: true},
				{Key: "regulatory_detail", Label: "Details of findings", Kind: FieldText, DependsOn: "regulatory_history", DependsVal: "true"},
			}},
		},
	}
}

func formC() Form {
	return Form{
		Kind: FormC,
		Name: "Form C: Notice of ceasing to perform controlled functions",
		Steps: []FormStep{
			{Title: "Firm details", Fields: firmFields()},
			{Title: "Individual", Fields: []FieldSpec{
				{Key: "candidate_name", Label: "Full name", Kind: FieldText, Required: true},
				{Key: "irn", Label: "Individual reference number", Kind: FieldText, Required: true},
			}},
			{Title: "Cessation", Fields: []FieldSpec{
				{Key: "cessation_date", Label: "Date function ceased", Kind: FieldDate, Required: true},
				{Key: "reason", Label: "Reason for ceasing", Kind: FieldSelect, Required: true,
					Options: []string{"resignation", "redundancy", "dismissal", "end of contract", "other"}},
				{Key: "reason_detail", Label: "Further detail", Kind: FieldText, DependsOn: "reason", DependsVal: "other"},
			}},
		},
	}
}

func formD() Form {
	return Form{
		Kind: FormD,
		Name: "Form D: Notification of changes to personal information or application details",
		Steps: []FormStep{
			{Title: "Firm details", Fields: firmFields()},
			{Title: "Individual", Fields: []FieldSpec{
				{Key: "candidate_name", Label: "Full name", Kind: FieldText, Required: true},
				{Key: "irn", Label: "Individual reference number", Kind: FieldText, Required: true},
			}},
			{Title: "Change", Fields: []FieldSpec{
				{Key: "change_type", Label: "Nature of change", Kind: FieldSelect, Required: true,
					Options: []string{"name", "address", "fitness and propriety", "arrangement change"}},
				{Key: "change_detail", Label: "Details of the change", Kind: FieldText, Required: true},
				{Key: "change_date", Label: "Date of change", Kind: FieldDate, Required: true},
			}},
		},
	}
}

func formE() Form {
	return Form{
		Kind: FormE,
		Name: "Form E: Internal transfer of an approved person",
		Steps: []FormStep{
			{Title: "Firm details", Fields: firmFields()},
			{Title: "Individual", Fields: []FieldSpec{
				{Key: "candidate_name", Label: "Full name", Kind: FieldText, Required: true},
				{Key: "irn", Label: "Individual reference number", Kind: FieldText, Required: true},
			}},
			{Title: "Transfer", Fields: []FieldSpec{
				{Key: "function_ceasing", Label: "Function being relinquished", Kind: FieldSelect, Required: true, Options: smfOptions},
				{Key: "function_applied", Label: "Function applied for", Kind: FieldSelect, Required: true, Options: smfOptions},
				{Key: "effective_date", Label: "Proposed effective date", Kind: FieldDate, Required: true},
			}},
		},
	}
}

func formPSD() Form {
	return Form{
		Kind: FormPSDIndivi,
		Name: "PSD Individual Form: Notification of PSD individuals",
		Steps: []FormStep{
			{Title: "Firm details", Fields: firmFields()},
			{Title: "Individual details", Fields: identityFields()},
			{Title: "Responsibility", Fields: []FieldSpec{
				{Key: "role", Label: "Role in payment services business", Kind: FieldSelect, Required: true,
					Options: []string{"director", "manager responsible for payment services", "person responsible for safeguarding"}},
				{Key: "start_date", Label: "Start date", Kind: FieldDate, Required: true},
			}},
		},
	}
}
