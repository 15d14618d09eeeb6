package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// emailData template payload for both notification emails
type emailData struct {
	Title          string
	Intro          string
	Extra          string
	RestaurantName string
	Address        string

	CustomerName string
	When         string
	Meal         string
	Guests       int
	Phone        string
	Email        string
	Notes        string
}

var emailTemplate = template.Must(template.New("booking").Parse(`<!DOCTYPE html>
<html lang="it">
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:0;background-color:#f5f5f5;font-family:Georgia,serif;">
  <table width="100%" cellpadding="0" cellspacing="0" style="padding:20px 0;">
    <tr><td align="center">
      <table width="600" cellpadding="0" cellspacing="0" style="max-width:600px;width:100%;background-color:#3d1a1a;border-radius:12px;color:#fecddd;">
        <tr><td style="padding:40px 30px 10px 30px;text-align:center;">
          <h1 style="margin:0;font-size:28px;font-weight:normal;letter-spacing:2px;">{{.RestaurantName}}</h1>
          <div style="margin-top:8px;font-size:13px;letter-spacing:3px;opacity:0.8;">RISTORANTE</div>
        </td></tr>
        <tr><td style="padding:25px 30px 10px 30px;text-align:center;">
          <h3 style="margin:0;color:#ffa6b8;font-size:22px;font-weight:normal;">{{.Title}}</h3>
        </td></tr>
        <tr><td style="padding:0 40px 20px 40px;text-align:center;font-size:15px;line-height:1.6;">{{.Intro}}</td></tr>
        <tr><td style="padding:0 30px 25px 30px;">
          <table width="100%" cellpadding="8" cellspacing="0" style="background-color:#5a2828;border-radius:8px;font-size:14px;color:#ffffff;">
            <tr><td style="color:#ffa6b8;width:110px;">Nome:</td><td>{{.CustomerName}}</td></tr>
            <tr><td style="color:#ffa6b8;">Data:</td><td>{{.When}}</td></tr>
            <tr><td style="color:#ffa6b8;">Servizio:</td><td>{{.Meal}}</td></tr>
            <tr><td style="color:#ffa6b8;">Ospiti:</td><td>{{.Guests}}</td></tr>
            <tr><td style="color:#ffa6b8;">Telefono:</td><td>{{.Phone}}</td></tr>
            <tr><td style="color:#ffa6b8;">Email:</td><td>{{.Email}}</td></tr>
            {{if .Notes}}<tr><td style="color:#ffa6b8;">Note:</td><td>{{.Notes}}</td></tr>{{end}}
          </table>
        </td></tr>
        {{if .Extra}}<tr><td style="padding:0 40px 25px 40px;font-size:14px;line-height:1.6;">{{.Extra}}</td></tr>{{end}}
        <tr><td style="padding:20px 30px 30px 30px;text-align:center;border-top:1px solid #8a4a4a;">
          <div style="font-size:13px;line-height:1.6;color:#ffa6b8;">{{.Address}}</div>
          <div style="margin-top:10px;font-size:11px;opacity:0.7;">Messaggio generato automaticamente dal sistema prenotazioni</div>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`))

// renderEmail renders the shared booking email layout
func renderEmail(data emailData) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderTemplate, err)
	}
	return buf.String(), nil
}
