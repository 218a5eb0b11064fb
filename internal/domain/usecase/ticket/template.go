package ticket

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"hospital-admin/internal/domain/entity"
)

// DefaultTemplate lays a ticket out for a 32 column thermal printer.
const DefaultTemplate = `{{ repeat 32 "=" }}
{{ .Hospital | upper | trunc 32 }}
{{ repeat 32 "-" }}
QUEUE NUMBER
{{ .Ticket.Number | upper }}
{{ repeat 32 "-" }}
Service : {{ .Ticket.Service | title }}
{{- with .Ticket.Counter }}
Counter : {{ . }}
{{- end }}
{{- with .Ticket.PatientName }}
Patient : {{ . | trunc 22 }}
{{- end }}
Issued  : {{ dateInZone "02 Jan 2006 15:04" .Ticket.IssuedAt .Zone }}
{{ repeat 32 "=" }}
{{ .Footer | default "Please wait until your number is called" | wrap 32 }}
`

type templateData struct {
	Hospital string
	Footer   string
	Zone     string
	Ticket   entity.QueueTicket
}

// Renderer executes the ticket template.
type Renderer struct {
	tmpl     *template.Template
	hospital string
	footer   string
	zone     string
}

// NewRenderer parses text with the sprig function map. An empty text uses DefaultTemplate
// and an empty zone renders times in UTC.
func NewRenderer(text, hospital, footer, zone string) (*Renderer, error) {
	if text == "" {
		text = DefaultTemplate
	}
	if zone == "" {
		zone = "UTC"
	}

	tmpl, err := template.New("queue-ticket").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse queue ticket template: %w", err)
	}
	return &Renderer{tmpl: tmpl, hospital: hospital, footer: footer, zone: zone}, nil
}

func (r *Renderer) Render(ticket entity.QueueTicket) (string, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, templateData{
		Hospital: r.hospital,
		Footer:   r.footer,
		Zone:     r.zone,
		Ticket:   ticket,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
