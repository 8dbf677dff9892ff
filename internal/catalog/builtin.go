package catalog

import "github.com/regbook/regbook/internal/model"

// Default returns the built-in catalog: the standard clause library and
// policy templates shipped with the binary. File overlays extend or
// replace entries by ID/code.
func Default() *Catalog {
	return New(builtinClauses(), builtinTemplates())
}

func boolPtr(b bool) *bool { return &b }

func builtinClauses() []model.Clause {
	return []model.Clause{
		// Shared library
		{
			ID:       "purpose-statement",
			Title:    "Purpose of this Policy",
			Summary:  "Why the policy exists and what it achieves.",
			Content:  "This policy sets out the firm's approach to meeting its regulatory obligations under the FCA Handbook and applicable legislation. It defines the mandatory standards all staff must follow and the principles that guide decisions where no explicit rule applies.",
			Category: model.CategoryGovernance,
		},
		{
			ID:       "scope-all-staff",
			Title:    "Scope and Applicability",
			Summary:  "Who and what the policy covers.",
			Content:  "This policy applies to all employees, contractors and temporary staff of the firm, in all locations, and to all products and services within the firm's regulatory permissions. Compliance with this policy is a condition of engagement.",
			Category: model.CategoryGovernance,
		},
		{
			ID:       "definitions-core",
			Title:    "Definitions",
			Summary:  "Key terminology used throughout the policy.",
			Content:  "Definitions used in this policy follow the FCA Handbook glossary unless stated otherwise. Where a term is defined in both the Handbook and legislation, the stricter regulatory definition applies.",
			Category: model.CategoryGovernance,
		},
		{
			ID:          "smcr-accountability",
			Title:       "Senior Manager Accountability",
			Summary:     "SM&CR responsibility allocation.",
			Content:     "Under the Senior Managers & Certification Regime, a named Senior Manager holds prescribed responsibility for this policy area. The allocation is recorded in the firm's Responsibilities Map and each statement of responsibilities. The accountable Senior Manager must approve material changes to this policy.",
			Category:    model.CategoryGovernance,
			IsMandatory: true,
		},
		{
			ID:       "board-oversight",
			Title:    "Board Governance and Oversight",
			Summary:  "Board-level review obligations.",
			Content:  "The board reviews this policy at least annually and whenever a material regulatory change occurs. Management information covering breaches, exceptions and emerging risks is presented to the board quarterly.",
			Category: model.CategoryGovernance,
		},
		{
			ID:       "three-lines",
			Title:    "Three Lines of Defence",
			Summary:  "Responsibility split across business, compliance, audit.",
			Content:  "First-line business management owns day-to-day compliance with this policy. The second-line compliance function provides oversight, advice and monitoring. Internal audit provides independent assurance over the design and operation of controls.",
			Category: model.CategoryGovernance,
		},
		{
			ID:       "breach-escalation",
			Title:    "Breach Escalation Procedure",
			Summary:  "How breaches are reported internally.",
			Content:  "Any suspected breach of this policy must be escalated to the compliance function within one business day of discovery. The compliance function maintains a breach register, assesses regulatory notification obligations and tracks remediation to closure. Escalation timelines are mandatory and may not be extended by business management.",
			Category: model.CategoryOperations,
		},
		{
			ID:       "record-keeping",
			Title:    "Record Keeping Requirements",
			Summary:  "Retention obligations.",
			Content:  "Records evidencing compliance with this policy must be retained for at least six years, or longer where a specific regulatory requirement applies. Records must be retrievable within five business days of a regulatory request.",
			Category: model.CategoryOperations,
		},
		{
			ID:       "training-annual",
			Title:    "Training and Competence",
			Summary:  "Annual training obligations.",
			Content:  "All relevant staff complete training on this policy at induction and at least annually thereafter. Completion is tracked and escalated to line management when overdue. Training content is refreshed whenever the policy materially changes.",
			Category: model.CategoryOperations,
		},
		{
			ID:       "policy-review-cycle",
			Title:    "Policy Review and Approval Cycle",
			Summary:  "Review cadence and ownership.",
			Content:  "This policy is reviewed annually by the policy owner, with interim reviews triggered by regulatory change, material incidents or audit findings. Approval follows the firm's governance hierarchy and is minuted.",
			Category: model.CategoryGovernance,
		},
		{
			ID:       "related-documents",
			Title:    "Related Documents and References",
			Summary:  "Cross-references to other firm documents.",
			Content:  "This policy should be read alongside the firm's compliance manual, risk appetite statement and the relevant procedure documents. Regulatory references include the FCA Handbook chapters applicable to the firm's permissions.",
			Category: model.CategoryGovernance,
		},

		// AML / CTF
		{
			ID:          "aml-mlro",
			Title:       "Money Laundering Reporting Officer",
			Summary:     "MLRO appointment and mandate.",
			Content:     "The firm appoints a Money Laundering Reporting Officer (SMF17) with responsibility for oversight of the firm's anti-money laundering systems and controls. The MLRO has unrestricted access to records, reports annually to the board, and decides whether internal reports require disclosure to the National Crime Agency.",
			Category:    model.CategoryFinancialCrime,
			AppliesTo:   []string{"AML_CTF"},
			IsMandatory: true,
		},
		{
			ID:        "aml-risk-assessment",
			Title:     "Business-Wide Risk Assessment",
			Summary:   "Firm-level ML/TF risk assessment requirement.",
			Content:   "The firm maintains a business-wide risk assessment of its exposure to money laundering and terrorist financing, covering customers, products, delivery channels and geographies. The assessment is a mandatory regulatory requirement under the Money Laundering Regulations and is refreshed at least annually.",
			Category:  model.CategoryFinancialCrime,
			AppliesTo: []string{"AML_CTF"},
		},
		{
			ID:        "aml-cdd",
			Title:     "Customer Due Diligence Procedure",
			Summary:   "Standard CDD process.",
			Content:   "Customer due diligence is performed before establishing a business relationship. The process verifies identity from reliable independent sources, identifies beneficial owners holding more than 25 percent, and establishes the purpose and intended nature of the relationship. Verification failures block onboarding until resolved.",
			Category:  model.CategoryFinancialCrime,
			AppliesTo: []string{"AML_CTF"},
		},
		{
			ID:        "aml-edd",
			Title:     "Enhanced Due Diligence",
			Summary:   "EDD triggers and additional measures.",
			Content:   "Enhanced due diligence applies to politically exposed persons, high-risk third countries, and any relationship presenting elevated risk in the firm's assessment. Additional measures include senior management approval, source of wealth and source of funds checks, and enhanced ongoing monitoring. A detailed checklist of enhanced measures per trigger is maintained in the appendix to this policy.",
			Category:  model.CategoryFinancialCrime,
			AppliesTo: []string{"AML_CTF"},
		},
		{
			ID:        "aml-ongoing-monitoring",
			Title:     "Ongoing Monitoring and Reporting",
			Summary:   "Transaction monitoring obligations.",
			Content:   "Business relationships are monitored on an ongoing basis to ensure activity is consistent with the firm's knowledge of the customer. Unusual patterns are investigated and documented. Monitoring output, alert volumes and disposition timelines form part of monthly compliance reporting.",
			Category:  model.CategoryFinancialCrime,
			AppliesTo: []string{"AML_CTF"},
		},
		{
			ID:        "aml-sar",
			Title:     "Suspicious Activity Reporting",
			Summary:   "Internal and external SAR process.",
			Content:   "Staff must submit an internal report to the MLRO when they know or suspect money laundering or terrorist financing. The MLRO evaluates each report and, where required, files a suspicious activity report with the National Crime Agency. Tipping off the subject of a report is a criminal offence.",
			Category:  model.CategoryFinancialCrime,
			AppliesTo: []string{"AML_CTF"},
		},
		{
			ID:        "aml-sanctions",
			Title:     "Sanctions Screening",
			Summary:   "Screening against UK sanctions lists.",
			Content:   "Customers and payments are screened against the UK consolidated sanctions list at onboarding and on an ongoing basis. True matches are frozen immediately and reported to the Office of Financial Sanctions Implementation. Screening system calibration is reviewed twice a year.",
			Category:  model.CategoryFinancialCrime,
			AppliesTo: []string{"AML_CTF"},
		},
		{
			ID:        "aml-tipping-off",
			Title:     "Tipping Off and Prejudicing Investigations",
			Summary:   "Prohibited disclosures.",
			Content:   "No member of staff may disclose that a suspicious activity report has been made, or that an investigation is contemplated, where the disclosure is likely to prejudice that investigation. Queries from customers about delayed transactions must follow the approved holding responses.",
			Category:  model.CategoryFinancialCrime,
			AppliesTo: []string{"AML_CTF"},
		},
		{
			ID:        "aml-training-example",
			Title:     "AML Training Case Study Library",
			Summary:   "Worked examples for training sessions.",
			Content:   "The compliance function maintains a library of anonymised case study material drawn from the firm's own alert history and published enforcement actions. Each example records the red flags present, the decisions taken and the lessons learned, and is used in annual training to ground abstract requirements in realistic scenarios. The library is an additional training resource and does not replace the mandatory core module.",
			Category:  model.CategoryFinancialCrime,
			AppliesTo: []string{"AML_CTF"},
		},

		// Vulnerable customers
		{
			ID:        "vc-definition",
			Title:     "Definition of Vulnerability",
			Summary:   "FCA four-driver model.",
			Content:   "A vulnerable customer is someone who, due to their personal circumstances, is especially susceptible to harm. The firm uses the FCA's four drivers of vulnerability: health, life events, resilience and capability. Vulnerability is a spectrum, not a fixed status, and any customer may become vulnerable.",
			Category:  model.CategoryCustomer,
			AppliesTo: []string{"VULNERABLE_CUST"},
		},
		{
			ID:          "vc-fair-treatment",
			Title:       "Fair Treatment Requirement",
			Summary:     "Consumer Duty outcome standard.",
			Content:     "The firm must deliver outcomes for vulnerable customers as good as those for other customers, consistent with the Consumer Duty. Product design, communications and support channels are assessed against this obligation before launch and at each review.",
			Category:    model.CategoryCustomer,
			AppliesTo:   []string{"VULNERABLE_CUST"},
			IsMandatory: true,
		},
		{
			ID:        "vc-identification",
			Title:     "Identification and Disclosure Handling",
			Summary:   "Recognising and recording vulnerability.",
			Content:   "Staff are trained to recognise indicators of vulnerability and to respond to disclosures with the TEXAS protocol: thank the customer, explain how the information will be used, obtain explicit consent to record it, ask questions, and signpost support. Recorded needs drive adjusted servicing.",
			Category:  model.CategoryCustomer,
			AppliesTo: []string{"VULNERABLE_CUST"},
		},
		{
			ID:        "vc-adjustments",
			Title:     "Reasonable Adjustments Process",
			Summary:   "Servicing adjustments for recorded needs.",
			Content:   "Where a customer has recorded support needs the firm offers appropriate adjustments, such as alternative communication formats, additional time for decisions, or a nominated third party contact. Adjustments are reviewed with the customer at least annually.",
			Category:  model.CategoryCustomer,
			AppliesTo: []string{"VULNERABLE_CUST"},
		},
		{
			ID:        "vc-monitoring-mi",
			Title:     "Vulnerability Management Information",
			Summary:   "Outcome monitoring metrics.",
			Content:   "The firm monitors outcomes for customers with recorded vulnerability against the wider book: complaint rates, product holdings, arrears and resolution timelines. Material divergence triggers root-cause reporting to the customer outcomes committee.",
			Category:  model.CategoryCustomer,
			AppliesTo: []string{"VULNERABLE_CUST"},
		},

		// Safeguarding
		{
			ID:          "sg-segregation",
			Title:       "Segregation of Relevant Funds",
			Summary:     "Core safeguarding requirement.",
			Content:     "Relevant funds received in exchange for electronic money or for the execution of payment transactions are segregated from the firm's own funds no later than the end of the business day following receipt, and held in a designated safeguarding account with an authorised credit institution. Commingling is prohibited.",
			Category:    model.CategoryFinancialCrime,
			AppliesTo:   []string{"SAFEGUARDING"},
			IsMandatory: true,
			Permissions: &model.PermissionRequired{PaymentServices: boolPtr(true)},
		},
		{
			ID:        "sg-designation",
			Title:     "Account Designation and Acknowledgement",
			Summary:   "Safeguarding account naming requirements.",
			Content:   "Safeguarding accounts are designated in a way that shows they hold customer funds, and the firm obtains an acknowledgement letter from the credit institution confirming no interest in, recourse against, or right of set-off over the funds. Letters are refreshed when account terms change.",
			Category:  model.CategoryOperations,
			AppliesTo: []string{"SAFEGUARDING"},
			Permissions: &model.PermissionRequired{PaymentServices: boolPtr(true)},
		},
		{
			ID:        "sg-reconciliation",
			Title:     "Reconciliation Procedure",
			Summary:   "Daily safeguarding reconciliation.",
			Content:   "The firm performs an internal reconciliation of safeguarding requirements against safeguarded funds each business day, and an external reconciliation against safeguarding account statements. Shortfalls are funded from the firm's own resources the same day, and excesses withdrawn. Persistent discrepancies are escalated to the accountable Senior Manager.",
			Category:  model.CategoryOperations,
			AppliesTo: []string{"SAFEGUARDING"},
		},
		{
			ID:        "sg-audit",
			Title:     "Safeguarding Audit",
			Summary:   "Annual independent audit.",
			Content:   "An annual audit of safeguarding arrangements is performed by a qualified independent auditor, assessing compliance with the safeguarding provisions of the Payment Services Regulations and Electronic Money Regulations. Findings are reported to the board with a tracked remediation plan.",
			Category:  model.CategoryOperations,
			AppliesTo: []string{"SAFEGUARDING"},
		},
		{
			ID:        "sg-wind-down",
			Title:     "Wind-Down and Insolvency Arrangements",
			Summary:   "Return of funds on failure.",
			Content:   "The firm maintains a wind-down plan describing how relevant funds would be returned to customers promptly in an insolvency. The plan records account structures, data requirements and the insolvency practitioner handover pack, and is tested through an annual desktop exercise.",
			Category:  model.CategoryOperations,
			AppliesTo: []string{"SAFEGUARDING"},
		},
		{
			ID:        "sg-reporting-template",
			Title:     "Safeguarding Reporting Template",
			Summary:   "Appendix template for monthly returns.",
			Content:   "The appendix template records safeguarded balances, reconciliation results and breach events for the monthly safeguarding report. The completed template is an additional detailed record supporting the firm's regulatory returns.",
			Category:  model.CategoryOperations,
			AppliesTo: []string{"SAFEGUARDING"},
		},
	}
}

func builtinTemplates() []model.Template {
	return []model.Template{
		{
			Code:        "AML_CTF",
			Name:        "Anti-Money Laundering & Counter-Terrorist Financing Policy",
			Category:    model.CategoryFinancialCrime,
			Description: "Firm-wide AML/CTF policy covering due diligence, monitoring, reporting and sanctions.",
			Sections: []model.TemplateSection{
				{ID: "aml-purpose", Title: "Purpose", SuggestedClauses: []string{"purpose-statement"}},
				{ID: "aml-scope", Title: "Scope", SuggestedClauses: []string{"scope-all-staff"}},
				{ID: "aml-definitions", Title: "Definitions", SuggestedClauses: []string{"definitions-core"}},
				{ID: "aml-policy", Title: "Policy Statement", SuggestedClauses: []string{"aml-risk-assessment", "aml-sanctions", "aml-tipping-off"}},
				{ID: "aml-procedures", Title: "Due Diligence Procedures", SectionType: model.SectionProcedure, SuggestedClauses: []string{"aml-cdd", "aml-edd", "aml-ongoing-monitoring", "aml-sar"}},
				{ID: "aml-roles", Title: "Roles and Responsibilities", SuggestedClauses: []string{"aml-mlro", "smcr-accountability", "three-lines"}},
				{ID: "aml-governance", Title: "Governance", SuggestedClauses: []string{"board-oversight", "policy-review-cycle"}},
				{ID: "aml-monitoring", Title: "Monitoring and MI", SuggestedClauses: []string{"aml-ongoing-monitoring", "breach-escalation", "record-keeping"}},
				{ID: "aml-training", Title: "Training", SuggestedClauses: []string{"training-annual", "aml-training-example"}},
				{ID: "aml-related", Title: "Related Documents", SectionType: model.SectionAppendix, SuggestedClauses: []string{"related-documents", "aml-training-example"}},
			},
			MandatoryClauses: []string{"aml-mlro", "smcr-accountability"},
		},
		{
			Code:        "VULNERABLE_CUST",
			Name:        "Vulnerable Customers Policy",
			Category:    model.CategoryCustomer,
			Description: "Identification, fair treatment and outcome monitoring for customers in vulnerable circumstances.",
			Sections: []model.TemplateSection{
				{ID: "vc-purpose", Title: "Purpose and Objectives", SuggestedClauses: []string{"purpose-statement"}},
				{ID: "vc-scope", Title: "Scope", SuggestedClauses: []string{"scope-all-staff"}},
				{ID: "vc-definitions", Title: "Definitions", SuggestedClauses: []string{"definitions-core", "vc-definition"}},
				{ID: "vc-policy", Title: "Policy Statement", SuggestedClauses: []string{"vc-fair-treatment"}},
				{ID: "vc-procedures", Title: "Identification and Handling", SectionType: model.SectionProcedure, SuggestedClauses: []string{"vc-identification", "vc-adjustments"}},
				{ID: "vc-roles", Title: "Roles and Responsibilities", SuggestedClauses: []string{"smcr-accountability", "three-lines"}},
				{ID: "vc-monitoring", Title: "Outcome Monitoring", SuggestedClauses: []string{"vc-monitoring-mi", "breach-escalation"}},
				{ID: "vc-training", Title: "Training and Awareness", SuggestedClauses: []string{"training-annual"}},
				{ID: "vc-related", Title: "Related Documents", SectionType: model.SectionAppendix, SuggestedClauses: []string{"related-documents"}},
			},
			MandatoryClauses: []string{"vc-fair-treatment", "smcr-accountability"},
		},
		{
			Code:        "SAFEGUARDING",
			Name:        "Safeguarding Policy",
			Category:    model.CategoryOperations,
			Description: "Safeguarding of relevant funds under the Payment Services and Electronic Money Regulations.",
			Sections: []model.TemplateSection{
				{ID: "sg-purpose", Title: "Purpose", SuggestedClauses: []string{"purpose-statement"}},
				{ID: "sg-scope", Title: "Scope", SuggestedClauses: []string{"scope-all-staff"}},
				{ID: "sg-policy", Title: "Policy Statement", SuggestedClauses: []string{"sg-segregation", "sg-designation"}},
				{ID: "sg-procedures", Title: "Reconciliation Process", SectionType: model.SectionProcedure, SuggestedClauses: []string{"sg-reconciliation", "sg-wind-down"}},
				{ID: "sg-roles", Title: "Roles and Responsibilities", SuggestedClauses: []string{"smcr-accountability", "three-lines"}},
				{ID: "sg-governance", Title: "Governance and Audit", SuggestedClauses: []string{"sg-audit", "board-oversight"}},
				{ID: "sg-monitoring", Title: "Monitoring and Reporting", SuggestedClauses: []string{"breach-escalation", "record-keeping"}},
				{ID: "sg-related", Title: "Appendix: Templates", SectionType: model.SectionAppendix, SuggestedClauses: []string{"sg-reporting-template", "related-documents"}},
			},
			MandatoryClauses: []string{"sg-segregation", "smcr-accountability"},
		},
	}
}
