package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lexsight/models"
)

func validNewDocument() models.NewDocument {
	return models.NewDocument{
		Name:    "nda.pdf",
		Content: "This Non-Disclosure Agreement is entered into by the parties.",
		Type:    models.DocumentTypeContract,
	}
}

func TestNewDocumentValidator(t *testing.T) {
	require.NotNil(t, NewDocumentValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewDocumentValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_NewDocument(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *models.NewDocument)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(d *models.NewDocument) {}},
		{name: "report type", mutate: func(d *models.NewDocument) { d.Type = models.DocumentTypeReport }},
		{name: "proposal type", mutate: func(d *models.NewDocument) { d.Type = models.DocumentTypeProposal }},
		{name: "empty name", mutate: func(d *models.NewDocument) { d.Name = "" }, wantErr: ErrEmptyName},
		{name: "blank name", mutate: func(d *models.NewDocument) { d.Name = "  \t" }, wantErr: ErrEmptyName},
		{name: "empty content", mutate: func(d *models.NewDocument) { d.Content = "\n" }, wantErr: ErrEmptyContent},
		{name: "unknown type", mutate: func(d *models.NewDocument) { d.Type = "memo" }, wantErr: ErrInvalidType},
		{name: "empty type", mutate: func(d *models.NewDocument) { d.Type = "" }, wantErr: ErrInvalidType},
		{
			name:   "scoped to name ignores content",
			mutate: func(d *models.NewDocument) { d.Content = "" },
			fields: []string{FieldName},
		},
		{
			name:    "unknown field",
			mutate:  func(d *models.NewDocument) {},
			fields:  []string{"owner"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validNewDocument()
			tt.mutate(&doc)

			err := NewDocumentValidator().Validate(context.Background(), doc, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)

			// pointer form behaves the same
			assert.NoError(t, NewDocumentValidator().Validate(context.Background(), &doc, tt.fields...))
		})
	}
}

func TestValidate_DocumentID(t *testing.T) {
	tests := []struct {
		name    string
		id      DocumentID
		wantErr bool
	}{
		{name: "uuid v7", id: "01956f5e-7a4b-7c3d-8e2f-1a2b3c4d5e6f"},
		{name: "uuid v4", id: "3f2b8c1e-9d4a-4b6e-8f1c-2a3b4c5d6e7f"},
		{name: "empty", id: "", wantErr: true},
		{name: "not a uuid", id: "42", wantErr: true},
		{name: "sql fragment", id: "1' OR '1'='1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDocumentValidator().Validate(context.Background(), tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocumentID)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidate_Credentials(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		fields  []string
		wantErr error
	}{
		{name: "valid", creds: Credentials{Email: "a@b.io", Password: "secret"}},
		{name: "empty email", creds: Credentials{Password: "secret"}, wantErr: ErrEmptyEmail},
		{name: "email without at", creds: Credentials{Email: "ab.io", Password: "secret"}, wantErr: ErrInvalidEmail},
		{name: "empty password", creds: Credentials{Email: "a@b.io"}, wantErr: ErrEmptyPassword},
		{name: "email only scope", creds: Credentials{Email: "a@b.io"}, fields: []string{FieldEmail}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDocumentValidator().Validate(context.Background(), tt.creds, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
