// Package model defines the questionnaire, assessment, and reference-data
// types shared across the scoring engine.
package model

// CompanyNature classifies a company's ownership structure.
type CompanyNature string

const (
	NaturePrivate CompanyNature = "private"
	NatureState   CompanyNature = "state"
	NatureJoint   CompanyNature = "joint"
	NatureForeign CompanyNature = "foreign"
	NatureListed  CompanyNature = "listed"
)

// CompanyType classifies a company's business model.
type CompanyType string

const (
	TypeManufacturer CompanyType = "manufacturer"
	TypeTrader       CompanyType = "trader"
	TypeHybrid       CompanyType = "hybrid"
	TypeBrand        CompanyType = "brand"
	TypeService      CompanyType = "service"
)

// CompanyProfile holds the company identity section of the questionnaire.
// Bucket fields hold closed-set range strings (e.g., "1000-3000") and may be
// empty when unanswered.
type CompanyProfile struct {
	Name              string        `json:"name"`
	EstablishedYear   string        `json:"established_year"`
	RegisteredCapital string        `json:"registered_capital"`
	CompanyNature     CompanyNature `json:"company_nature"`
	CompanyType       CompanyType   `json:"company_type"`
	Industry          string        `json:"industry"`
	MainProduct       string        `json:"main_product"`
	ProductCategory   string        `json:"product_category"`
	AnnualRevenue     string        `json:"annual_revenue"`
	EmployeeCount     string        `json:"employee_count"`
	RAndDStaffRatio   string        `json:"rand_d_staff_ratio"`
	CoreCompetencies  []string      `json:"core_competencies"`
	ContactName       string        `json:"contact_name"`
	ContactPosition   string        `json:"contact_position"`
	ContactPhone      string        `json:"contact_phone"`
	ContactEmail      string        `json:"contact_email"`
}

// Channels records which outbound sales channels a company operates.
type Channels struct {
	B2BPlatform         bool     `json:"b2b_platform"`
	B2BPlatformsUsed    []string `json:"b2b_platforms_used"`
	SocialMedia         bool     `json:"social_media"`
	SocialPlatformsUsed []string `json:"social_platforms_used"`
	B2CPlatform         bool     `json:"b2c_platform"`
	B2CPlatformsUsed    []string `json:"b2c_platforms_used"`
	IndependentSite     bool     `json:"independent_site"`
	OfflineExhibition   bool     `json:"offline_exhibition"`
	OverseasOffice      bool     `json:"overseas_office"`
	AgentDistributor    bool     `json:"agent_distributor"`
}

// ActiveCount returns the number of active channel entries, counting each
// set flag and each non-empty platform list.
func (c Channels) ActiveCount() int {
	n := c.ActiveFlagCount()
	for _, list := range [][]string{c.B2BPlatformsUsed, c.SocialPlatformsUsed, c.B2CPlatformsUsed} {
		if len(list) > 0 {
			n++
		}
	}
	return n
}

// ActiveFlagCount returns the number of set channel flags, ignoring the
// platform lists. Used for channel-diversity findings.
func (c Channels) ActiveFlagCount() int {
	n := 0
	for _, b := range []bool{
		c.B2BPlatform, c.SocialMedia, c.B2CPlatform,
		c.IndependentSite, c.OfflineExhibition, c.OverseasOffice, c.AgentDistributor,
	} {
		if b {
			n++
		}
	}
	return n
}

// Any reports whether at least one channel is active.
func (c Channels) Any() bool {
	return c.ActiveCount() > 0
}

// TeamConfig describes the dedicated export team, if any.
type TeamConfig struct {
	HasDedicatedTeam          bool     `json:"has_dedicated_team"`
	TeamSize                  string   `json:"team_size"`
	TeamStructure             []string `json:"team_structure"`
	ForeignLanguageCapability string   `json:"foreign_language_capability"`
}

// OverseasDiagnosis holds the export-history section of the questionnaire.
type OverseasDiagnosis struct {
	Stage                    Stage      `json:"stage"`
	StartYear                string     `json:"start_year"`
	HasExportExperience      bool       `json:"has_export_experience"`
	AnnualExportValue        string     `json:"annual_export_value"`
	ExportGrowthRate         string     `json:"export_growth_rate"`
	ExportRevenueRatio       string     `json:"export_revenue_ratio"`
	MarketCount              string     `json:"market_count"`
	TopMarkets               []string   `json:"top_markets"`
	CustomerTypes            []string   `json:"customer_types"`
	TopCustomerConcentration string     `json:"top_customer_concentration"`
	Channels                 Channels   `json:"channels"`
	TeamConfig               TeamConfig `json:"team_config"`
}

// ProductCompetitiveness holds the product section of the questionnaire.
type ProductCompetitiveness struct {
	Certifications          []string `json:"certifications"`
	CertificationInProgress []string `json:"certification_in_progress"`
	PricePositioning        string   `json:"price_positioning"`
	MOQ                     string   `json:"moq"`
	CustomizationCapability string   `json:"customization_capability"`
	HasRAndD                bool     `json:"has_rand_d"`
	AnnualNewProducts       string   `json:"annual_new_products"`
	PatentCount             string   `json:"patent_count"`
	ProductionCapacity      string   `json:"production_capacity"`
	QualityControl          []string `json:"quality_control"`
	DeliveryTime            string   `json:"delivery_time"`
	SupplyChainStability    string   `json:"supply_chain_stability"`
	KeyMaterialSource       string   `json:"key_material_source"`
}

// PlatformOperation holds B2B platform operating metrics.
type PlatformOperation struct {
	ProductCount   string `json:"product_count"`
	InquiryVolume  string `json:"inquiry_volume"`
	ResponseTime   string `json:"response_time"`
	ConversionRate string `json:"conversion_rate"`
}

// SocialOperation holds social media operating metrics.
type SocialOperation struct {
	TotalFollowers string `json:"total_followers"`
	MonthlyContent string `json:"monthly_content"`
	EngagementRate string `json:"engagement_rate"`
	LeadsGenerated string `json:"leads_generated"`
}

// OperationCapability holds the operations section of the questionnaire.
type OperationCapability struct {
	HasCRM            bool              `json:"has_crm"`
	HasERP            bool              `json:"has_erp"`
	DigitalLevel      string            `json:"digital_level"`
	MarketingBudget   string            `json:"marketing_budget"`
	ContentProduction string            `json:"content_production"`
	PlatformOperation PlatformOperation `json:"platform_operation"`
	SocialOperation   SocialOperation   `json:"social_operation"`
	HasBrand          bool              `json:"has_brand"`
	BrandAwareness    string            `json:"brand_awareness"`
	BrandProtection   []string          `json:"brand_protection"`
}

// ResourceAndPlan holds the resources-and-planning section of the questionnaire.
type ResourceAndPlan struct {
	ExportBudget         string   `json:"export_budget"`
	FinancingCapability  string   `json:"financing_capability"`
	GovernmentSupport    []string `json:"government_support"`
	IndustryAssociations []string `json:"industry_associations"`
	HasClearPlan         bool     `json:"has_clear_plan"`
	PlanTimeframe        string   `json:"plan_timeframe"`
	TargetMarkets        []string `json:"target_markets"`
	TargetRevenueGrowth  string   `json:"target_revenue_growth"`
	PerceivedRisks       []string `json:"perceived_risks"`
	RiskMitigation       []string `json:"risk_mitigation"`
}

// Application is the complete set of questionnaire answers for one company.
// It is treated as immutable once assembled; the scoring engine never
// mutates it.
type Application struct {
	Profile   CompanyProfile         `json:"profile"`
	Diagnosis OverseasDiagnosis      `json:"diagnosis"`
	Product   ProductCompetitiveness `json:"product"`
	Operation OperationCapability    `json:"operation"`
	Resource  ResourceAndPlan        `json:"resource"`
}
