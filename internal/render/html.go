package render

import (
	"fmt"
	"html/template"
	"io"

	"easeinvo/pkg/models"
)

// HTML templates are authored at the fixed nominal A4 size so the on-screen
// document and the captured PDF share identical geometry.

const baseCSS = `
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: Helvetica, Arial, sans-serif; color: #0f172a; background: #fff; }
  .page { width: 210mm; min-height: 297mm; margin: 0 auto; background: #fff; }
  .muted { color: #64748b; }
  .label { font-size: 9px; font-weight: 700; text-transform: uppercase; letter-spacing: 0.1em; color: #94a3b8; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; font-size: 9px; text-transform: uppercase; letter-spacing: 0.1em; color: #94a3b8; padding: 8px 0; }
  td { padding: 10px 0; font-size: 12px; }
  .num { text-align: right; }
  .qty { text-align: center; }
  address, .pre { white-space: pre-wrap; font-style: normal; }
`

const modernHTML = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Invoice {{.Header.Number}}</title><style>` + baseCSS + `
  .accent-bar { height: 10mm; width: 100%; background: {{.Accent}}; }
  .body { padding: 14mm; }
  .top { display: flex; justify-content: space-between; margin-bottom: 14mm; }
  .wordmark { font-size: 40px; font-weight: 900; opacity: 0.1; }
  .logo-ph { width: 36px; height: 36px; border-radius: 8px; background: {{.Accent}}; color: #fff; font-weight: 700; font-size: 20px; display: inline-flex; align-items: center; justify-content: center; }
  .bill-card { background: #f8fafc; border: 1px solid #f1f5f9; border-radius: 12px; padding: 10mm; display: flex; justify-content: space-between; margin-bottom: 10mm; }
  .amount-due { font-size: 36px; font-weight: 900; color: {{.Accent}}; }
  .summary { width: 70mm; margin-left: auto; }
  .summary .row { display: flex; justify-content: space-between; padding: 4px 0; font-size: 12px; color: #64748b; }
  .summary .row.total { font-size: 18px; font-weight: 900; border-top: 4px solid #0f172a; padding-top: 10px; color: {{.Accent}}; }
  .summary .row.discount { color: #f43f5e; }
</style></head>
<body><div class="page" id="invoice-capture-area">
  <div class="accent-bar"></div>
  <div class="body">
    <div class="top">
      <div>
        {{if .Header.LogoSrc}}<img src="{{.Header.LogoSrc}}" alt="Logo" style="height:36px">{{else}}<span class="logo-ph">{{.Header.LogoFallback}}</span>{{end}}
        <h2>{{.Sender.Name}}</h2>
        <address class="muted">{{.Sender.Address}}</address>
        <p class="muted">{{.Sender.Email}}</p>
        {{if .Sender.Phone}}<p class="muted">{{.Sender.Phone}}</p>{{end}}
      </div>
      <div style="text-align:right">
        <div class="wordmark">{{.Header.Title}}</div>
        <p><strong>#{{.Header.Number}}</strong></p>
        <p class="muted">Issued: {{.Header.IssueDate}}</p>
        <p class="muted">Due: {{.Header.DueDate}}</p>
      </div>
    </div>
    <div class="bill-card">
      <div>
        <p class="label">{{.Client.Label}}</p>
        <h3>{{.Client.Name}}</h3>
        <address class="muted">{{.Client.Address}}</address>
        <p class="muted">{{.Client.Email}}</p>
        {{if .Client.Phone}}<p class="muted">{{.Client.Phone}}</p>{{end}}
      </div>
      <div style="text-align:right">
        <p class="label">Total Amount Due</p>
        <p class="amount-due">{{.AmountDue}}</p>
      </div>
    </div>
    <table>
      <thead><tr><th>Item &amp; Description</th><th class="qty">Qty</th><th class="num">Price</th><th class="num">Amount</th></tr></thead>
      <tbody>
      {{range .Items}}<tr><td><strong>{{.Name}}</strong></td><td class="qty">{{.Quantity}}</td><td class="num">{{.Rate}}</td><td class="num"><strong>{{.Amount}}</strong></td></tr>
      {{end}}</tbody>
    </table>
    <div class="summary">
      {{range .Summary}}<div class="row {{.Kind}}"><span>{{.Label}}</span><span>{{.Amount}}</span></div>
      {{end}}
    </div>
    <div style="margin-top:12mm; display:flex; gap:12mm">
      <div style="flex:1"><p class="label">{{.Terms.Label}}</p><p class="pre muted">{{.Terms.Text}}</p></div>
      {{if .Notes.Text}}<div style="flex:1"><p class="label">{{.Notes.Label}}</p><p class="pre muted">{{.Notes.Text}}</p></div>{{end}}
    </div>
  </div>
</div></body></html>
`

const classicHTML = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Invoice {{.Header.Number}}</title><style>` + baseCSS + `
  .body { padding: 14mm; }
  .head { display: flex; justify-content: space-between; border-bottom: 2px solid {{.Accent}}; padding-bottom: 8mm; margin-bottom: 12mm; }
  .title { font-size: 32px; font-weight: 700; text-transform: uppercase; letter-spacing: 0.2em; color: {{.Accent}}; }
  thead tr { border-bottom: 2px solid {{.Accent}}; }
  tbody tr { border-bottom: 1px solid #f1f5f9; }
  .summary { width: 72mm; margin-left: auto; background: #f8fafc; border-radius: 8px; padding: 8mm; }
  .summary .row { display: flex; justify-content: space-between; padding: 4px 0; font-size: 12px; color: #64748b; }
  .summary .row.discount { color: #f43f5e; }
  .summary .row.total { font-size: 18px; font-weight: 900; color: #0f172a; border-top: 2px solid {{.Accent}}; padding-top: 10px; }
  .summary .row.total span:last-child { color: {{.Accent}}; }
</style></head>
<body><div class="page" id="invoice-capture-area">
  <div class="body">
    <div class="head">
      <div>
        <div class="title">Invoice</div>
        <p class="muted"><strong>#{{.Header.Number}}</strong></p>
      </div>
      <div style="text-align:right">
        {{if .Header.LogoSrc}}<img src="{{.Header.LogoSrc}}" alt="Logo" style="height:36px">{{end}}
        <h2>{{.Sender.Name}}</h2>
        <address class="muted">{{.Sender.Address}}</address>
        {{if .Sender.Phone}}<p class="muted">{{.Sender.Phone}}</p>{{end}}
      </div>
    </div>
    <div style="display:flex; justify-content:space-between; margin-bottom:12mm">
      <div>
        <p class="label">Bill To:</p>
        <h4>{{.Client.Name}}</h4>
        <address class="muted">{{.Client.Address}}</address>
        {{if .Client.Phone}}<p class="muted">{{.Client.Phone}}</p>{{end}}
      </div>
      <div style="text-align:right">
        <p><span class="label">Date:</span> {{.Header.IssueDate}}</p>
        <p><span class="label">Due Date:</span> {{.Header.DueDate}}</p>
      </div>
    </div>
    <table style="margin-bottom:8mm">
      <thead><tr><th>Description</th><th class="qty">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr></thead>
      <tbody>
      {{range .Items}}<tr><td>{{.Name}}</td><td class="qty">{{.Quantity}}</td><td class="num">{{.Rate}}</td><td class="num"><strong>{{.Amount}}</strong></td></tr>
      {{end}}</tbody>
    </table>
    <div class="summary">
      {{range .Summary}}<div class="row {{.Kind}}"><span>{{.Label}}</span><span>{{.Amount}}</span></div>
      {{end}}
    </div>
    <div style="margin-top:12mm; border-top:1px solid #f1f5f9; padding-top:8mm; display:flex; gap:12mm">
      <div style="flex:1"><p class="label">{{.Notes.Label}}</p><p class="pre muted">{{.Notes.Text}}</p></div>
      <div style="flex:1"><p class="label">{{.Terms.Label}}</p><p class="pre muted">{{.Terms.Text}}</p></div>
    </div>
  </div>
</div></body></html>
`

const minimalHTML = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Invoice {{.Header.Number}}</title><style>` + baseCSS + `
  .body { padding: 14mm; font-weight: 300; }
  .head { display: flex; justify-content: space-between; margin-bottom: 16mm; }
  .wordmark { font-size: 44px; font-weight: 900; opacity: 0.1; text-transform: uppercase; }
  .rule { border-bottom: 2px solid #0f172a; }
  .card { width: 60mm; margin-left: auto; background: {{.Accent}}; color: #fff; border-radius: 14px; padding: 8mm; }
  .card .row { display: flex; justify-content: space-between; padding: 2px 0; font-size: 11px; opacity: 0.6; }
  .card .row.discount { color: #fda4af; opacity: 1; }
  .card .row.total { font-size: 20px; font-weight: 900; opacity: 1; border-top: 1px solid rgba(255,255,255,0.2); margin-top: 8px; padding-top: 8px; }
</style></head>
<body><div class="page" id="invoice-capture-area">
  <div class="body">
    <div class="head">
      <div>
        {{if .Header.LogoSrc}}<img src="{{.Header.LogoSrc}}" alt="Logo" style="height:32px">{{end}}
        <h2>{{.Sender.Name}}</h2>
        <address class="muted">{{.Sender.Address}}</address>
        {{if .Sender.Phone}}<p class="muted">{{.Sender.Phone}}</p>{{end}}
      </div>
      <div style="text-align:right">
        <div class="wordmark">{{.Header.Title}}</div>
        <p><strong>NO. {{.Header.Number}}</strong></p>
        <p class="muted">{{.Header.IssueDate}}</p>
      </div>
    </div>
    <div style="margin-bottom:16mm">
      <p class="label">{{.Client.Label}}</p>
      <h3>{{.Client.Name}}</h3>
      <address class="muted">{{.Client.Address}}</address>
      {{if .Client.Phone}}<p class="muted">{{.Client.Phone}}</p>{{end}}
    </div>
    <table style="margin-bottom:10mm">
      <thead><tr class="rule"><th>Description</th><th class="qty">Qty</th><th class="num">Rate</th><th class="num">Total</th></tr></thead>
      <tbody>
      {{range .Items}}<tr style="border-bottom:1px solid #f1f5f9"><td><strong>{{.Name}}</strong><br><span class="muted" style="font-size:10px">{{.Rate}} / unit</span></td><td class="qty">{{.Quantity}}</td><td class="num">{{.Rate}}</td><td class="num"><strong>{{.Amount}}</strong></td></tr>
      {{end}}</tbody>
    </table>
    <div style="display:flex; justify-content:space-between; align-items:flex-start">
      <div style="max-width:70mm">
        <p class="label">{{.Terms.Label}}</p>
        <p class="pre muted" style="font-size:10px">{{.Terms.Text}}</p>
        {{if .Notes.Text}}<p class="label" style="margin-top:6mm">{{.Notes.Label}}</p><p class="pre muted" style="font-size:10px; font-style:italic">{{.Notes.Text}}</p>{{end}}
      </div>
      <div class="card">
        {{range .Summary}}<div class="row {{.Kind}}"><span>{{.Label}}</span><span>{{.Amount}}</span></div>
        {{end}}
      </div>
    </div>
  </div>
</div></body></html>
`

var htmlTemplates = map[models.Template]*template.Template{
	models.TemplateModern:  template.Must(template.New("modern").Parse(modernHTML)),
	models.TemplateClassic: template.Must(template.New("classic").Parse(classicHTML)),
	models.TemplateMinimal: template.Must(template.New("minimal").Parse(minimalHTML)),
}

// WriteHTML renders the document's HTML projection to w. The markup is a
// deterministic function of the document.
func WriteHTML(w io.Writer, doc *Document) error {
	tmpl, ok := htmlTemplates[doc.Variant]
	if !ok {
		// Render resolves unknown selectors before we get here.
		tmpl = htmlTemplates[models.TemplateModern]
	}
	if err := tmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("failed to render %s template: %w", doc.Variant, err)
	}
	return nil
}
