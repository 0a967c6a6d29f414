package model

// DegreeLevel 学位层次
type DegreeLevel string

const (
	DegreeBachelor    DegreeLevel = "bachelor"
	DegreeMaster      DegreeLevel = "master"
	DegreeDoctoral    DegreeLevel = "doctoral"
	DegreeCertificate DegreeLevel = "certificate"
)

// SponsorType 资金担保来源
type SponsorType string

const (
	SponsorSelf       SponsorType = "self"
	SponsorParents    SponsorType = "parents"
	SponsorGovernment SponsorType = "government"
	SponsorEmployer   SponsorType = "employer"
	SponsorOther      SponsorType = "other"
)

// I20RequestForm I-20 申请表（国际学生；临时对象，不保留）
type I20RequestForm struct {
	// 个人信息
	FirstName            string `json:"first_name"             validate:"notblank"`
	LastName             string `json:"last_name"              validate:"notblank"`
	DateOfBirth          string `json:"date_of_birth"          validate:"required,datetime=2006-01-02"`
	CountryOfBirth       string `json:"country_of_birth"       validate:"notblank"`
	CountryOfCitizenship string `json:"country_of_citizenship" validate:"notblank"`
	PassportNumber       string `json:"passport_number"        validate:"notblank"`
	PassportExpiration   string `json:"passport_expiration"    validate:"required,datetime=2006-01-02"`

	// 联系方式
	MailingAddress string `json:"mailing_address" validate:"notblank"`
	City           string `json:"city"            validate:"notblank"`
	State          string `json:"state"           validate:"notblank"`
	PostalCode     string `json:"postal_code"     validate:"notblank"`
	Country        string `json:"country"         validate:"notblank"`
	Email          string `json:"email"           validate:"required,email"`
	Phone          string `json:"phone"           validate:"notblank"`

	// 学业信息
	ProgramOfStudy     string      `json:"program_of_study"    validate:"notblank"`
	DegreeLevel        DegreeLevel `json:"degree_level"        validate:"required,oneof=bachelor master doctoral certificate"`
	ExpectedStartDate  string      `json:"expected_start_date" validate:"required,datetime=2006-01-02"`
	ExpectedGraduation string      `json:"expected_graduation" validate:"required,datetime=2006-01-02"`

	// 资金信息
	FinancialSponsor        SponsorType `json:"financial_sponsor"         validate:"required,oneof=self parents government employer other"`
	SponsorRelationship     string      `json:"sponsor_relationship"      validate:"notblank"`
	EstimatedAnnualExpenses string      `json:"estimated_annual_expenses" validate:"required,numeric"`
	BankStatementAmount     string      `json:"bank_statement_amount"     validate:"required,numeric"`

	// 证明材料
	HasPassportCopy   bool `json:"has_passport_copy"   validate:"required"`
	HasBankStatements bool `json:"has_bank_statements" validate:"required"`
	HasSponsorLetter  bool `json:"has_sponsor_letter"`
	HasTranscripts    bool `json:"has_transcripts"     validate:"required"`
}
