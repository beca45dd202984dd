// Package intake reads consultant spreadsheets of questionnaire answers
// and maps each row to an Application. Malformed rows are reported, not
// fatal: one bad row never aborts a batch.
package intake

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/globalbridge/readiness-cli/internal/model"
)

// Row is one intake sheet row, mapped to an Application or an error.
type Row struct {
	Line int
	App  model.Application
	Err  error
}

// ReadFile reads the first sheet of an XLSX intake workbook. The first
// row must be a header of column names; every later non-empty row maps
// to one Row.
func ReadFile(path string) ([]Row, error) {
	return readSheet(path, "")
}

// ReadSheet reads a named sheet of an XLSX intake workbook.
func ReadSheet(path, sheetName string) ([]Row, error) {
	return readSheet(path, sheetName)
}

func readSheet(path, sheetName string) ([]Row, error) {
	raw, err := sheetRows(path, sheetName)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, eris.New("intake: sheet has no header row")
	}

	header := make(map[string]int, len(raw[0]))
	for i, name := range raw[0] {
		header[normalizeHeader(name)] = i
	}
	if _, ok := header["company_name"]; !ok {
		return nil, eris.New("intake: header has no company_name column")
	}

	log := zap.L().With(zap.String("component", "intake"))

	var rows []Row
	for i, cells := range raw[1:] {
		line := i + 2 // 1-based, after the header
		if blankRow(cells) {
			continue
		}

		app, err := mapRow(header, cells)
		if err != nil {
			log.Warn("intake: skipping malformed row",
				zap.Int("line", line), zap.Error(err))
		}
		rows = append(rows, Row{Line: line, App: app, Err: err})
	}
	return rows, nil
}

// mapRow converts one sheet row to an Application using the header index.
func mapRow(header map[string]int, cells []string) (model.Application, error) {
	get := func(col string) string {
		idx, ok := header[col]
		if !ok || idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	name := get("company_name")
	if name == "" {
		return model.Application{}, eris.New("intake: row has no company name")
	}

	app := model.Application{
		Profile: model.CompanyProfile{
			Name:             name,
			EstablishedYear:  get("established_year"),
			CompanyNature:    model.CompanyNature(get("company_nature")),
			CompanyType:      model.CompanyType(get("company_type")),
			Industry:         get("industry"),
			MainProduct:      get("main_product"),
			AnnualRevenue:    get("annual_revenue"),
			EmployeeCount:    get("employee_count"),
			RAndDStaffRatio:  get("rand_d_staff_ratio"),
			CoreCompetencies: splitList(get("core_competencies")),
			ContactName:      get("contact_name"),
			ContactPhone:     get("contact_phone"),
			ContactEmail:     get("contact_email"),
		},
		Diagnosis: model.OverseasDiagnosis{
			Stage:              model.Stage(get("stage")),
			AnnualExportValue:  get("annual_export_value"),
			ExportRevenueRatio: get("export_revenue_ratio"),
			MarketCount:        get("market_count"),
			TopMarkets:         splitList(get("top_markets")),
			Channels: model.Channels{
				B2BPlatform:       parseBool(get("b2b_platform")),
				B2BPlatformsUsed:  splitList(get("b2b_platforms_used")),
				SocialMedia:       parseBool(get("social_media")),
				B2CPlatform:       parseBool(get("b2c_platform")),
				IndependentSite:   parseBool(get("independent_site")),
				OfflineExhibition: parseBool(get("offline_exhibition")),
				OverseasOffice:    parseBool(get("overseas_office")),
				AgentDistributor:  parseBool(get("agent_distributor")),
			},
			TeamConfig: model.TeamConfig{
				HasDedicatedTeam:          parseBool(get("has_dedicated_team")),
				TeamSize:                  get("team_size"),
				ForeignLanguageCapability: get("foreign_language_capability"),
			},
		},
		Product: model.ProductCompetitiveness{
			Certifications:          splitList(get("certifications")),
			PricePositioning:        get("price_positioning"),
			CustomizationCapability: get("customization_capability"),
			HasRAndD:                parseBool(get("has_rand_d")),
			AnnualNewProducts:       get("annual_new_products"),
			PatentCount:             get("patent_count"),
			QualityControl:          splitList(get("quality_control")),
			SupplyChainStability:    get("supply_chain_stability"),
		},
		Operation: model.OperationCapability{
			HasCRM:          parseBool(get("has_crm")),
			HasERP:          parseBool(get("has_erp")),
			DigitalLevel:    get("digital_level"),
			MarketingBudget: get("marketing_budget"),
			HasBrand:        parseBool(get("has_brand")),
			BrandAwareness:  get("brand_awareness"),
		},
		Resource: model.ResourceAndPlan{
			ExportBudget:        get("export_budget"),
			FinancingCapability: get("financing_capability"),
			GovernmentSupport:   splitList(get("government_support")),
			HasClearPlan:        parseBool(get("has_clear_plan")),
			PlanTimeframe:       get("plan_timeframe"),
			TargetMarkets:       splitList(get("target_markets")),
			TargetRevenueGrowth: get("target_revenue_growth"),
			PerceivedRisks:      splitList(get("perceived_risks")),
			RiskMitigation:      splitList(get("risk_mitigation")),
		},
	}
	app.Operation.SocialOperation.TotalFollowers = get("total_followers")

	if stage := app.Diagnosis.Stage; stage != "" && stage.Ordinal() < 0 {
		return model.Application{}, eris.Errorf("intake: unknown stage %q", stage)
	}
	return app, nil
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseBool accepts the spellings consultants actually type.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

// splitList splits a multi-valued cell on pipes, semicolons, or commas.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ';' || r == ','
	})
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
