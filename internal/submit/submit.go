// Package submit posts completed assessment reports to a Notion database.
// Callers treat submission as fire-and-forget: the scoring pipeline never
// blocks on it, and failures are logged, not propagated to the user.
package submit

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/globalbridge/readiness-cli/internal/model"
	"github.com/globalbridge/readiness-cli/pkg/notion"
)

// Submitter posts assessment records to one Notion database.
type Submitter struct {
	client notion.Client
	dbID   string
}

// New creates a Submitter for the given assessment database.
func New(client notion.Client, dbID string) *Submitter {
	return &Submitter{client: client, dbID: dbID}
}

// BuildProperties converts a report to the Notion page properties of one
// assessment record. The company name doubles as a rich_text "Company"
// property so the database can be filtered on it.
func BuildProperties(report *model.Report) notionapi.Properties {
	props := notionapi.Properties{
		"Name": notionapi.TitleProperty{
			Type: notionapi.PropertyTypeTitle,
			Title: []notionapi.RichText{
				{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: report.Profile.Name}},
			},
		},
		"Company":  richText(report.Profile.Name),
		"Industry": richText(report.Profile.Industry),
		"Score": notionapi.NumberProperty{
			Type:   notionapi.PropertyTypeNumber,
			Number: float64(report.Assessment.TotalScore),
		},
		"Stage": selectProp(string(report.Assessment.Stage)),
		"Level": selectProp(string(report.Assessment.Level)),
	}

	if report.Profile.ContactName != "" {
		contact := report.Profile.ContactName
		if report.Profile.ContactPhone != "" {
			contact = fmt.Sprintf("%s (%s)", contact, report.Profile.ContactPhone)
		}
		props["Contact"] = richText(contact)
	}
	if report.Profile.ContactEmail != "" {
		props["Email"] = notionapi.EmailProperty{
			Type:  notionapi.PropertyTypeEmail,
			Email: report.Profile.ContactEmail,
		}
	}
	if !report.GeneratedAt.IsZero() {
		d := notionapi.Date(report.GeneratedAt)
		props["Assessed"] = notionapi.DateProperty{
			Type: notionapi.PropertyTypeDate,
			Date: &notionapi.DateObject{Start: &d},
		}
	}

	return props
}

// Submit creates one assessment record page. A report without a company
// name is rejected before any API call.
func (s *Submitter) Submit(ctx context.Context, report *model.Report) error {
	if report.Profile.Name == "" {
		return eris.New("submit: report has no company name")
	}

	req := &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(s.dbID),
		},
		Properties: BuildProperties(report),
	}

	page, err := s.client.CreatePage(ctx, req)
	if err != nil {
		return eris.Wrapf(err, "submit: create record for %s", report.Profile.Name)
	}

	zap.L().Info("submit: assessment record created",
		zap.String("company", report.Profile.Name),
		zap.String("page_id", string(page.ID)))
	return nil
}

// Exists reports whether the database already holds a record for the
// company. Used to warn about duplicate submissions, never to block them.
func (s *Submitter) Exists(ctx context.Context, company string) (bool, error) {
	resp, err := s.client.QueryDatabase(ctx, s.dbID, &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: "Company",
			RichText: &notionapi.TextFilterCondition{Equals: company},
		},
		PageSize: 1,
	})
	if err != nil {
		return false, eris.Wrapf(err, "submit: query records for %s", company)
	}
	return len(resp.Results) > 0, nil
}

// SubmitAsync launches Submit in a goroutine and logs the outcome. This is
// the fire-and-forget entry point the report pipeline uses.
func (s *Submitter) SubmitAsync(ctx context.Context, report *model.Report) {
	go func() {
		if exists, err := s.Exists(ctx, report.Profile.Name); err == nil && exists {
			zap.L().Warn("submit: duplicate assessment record",
				zap.String("company", report.Profile.Name))
		}
		if err := s.Submit(ctx, report); err != nil {
			zap.L().Error("submit: record submission failed",
				zap.String("company", report.Profile.Name),
				zap.Error(err))
		}
	}()
}

func richText(s string) notionapi.RichTextProperty {
	return notionapi.RichTextProperty{
		Type: notionapi.PropertyTypeRichText,
		RichText: []notionapi.RichText{
			{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: s}},
		},
	}
}

func selectProp(name string) notionapi.SelectProperty {
	return notionapi.SelectProperty{
		Type:   notionapi.PropertyTypeSelect,
		Select: notionapi.Option{Name: name},
	}
}
