package otp

import (
	"html/template"
	"strings"
)

// Transactional-mail HTML: table layout, inline styles, no external CSS.
var emailTmpl = template.Must(template.New("otp-email").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Verification Code</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Open Sans', Arial, sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0" border="0">
        <tr>
            <td align="center" style="background-color: #d9edf7; padding: 40px 20px;">
                <table width="600" cellpadding="0" cellspacing="0" border="0" style="background-color: #ffffff; max-width: 600px;">
                    <tr>
                        <td style="padding: 24px 40px 40px 40px;">
                            <p style="margin: 0; font-size: 24px; color: #111; font-weight: 400;">
                                Dear <strong style="font-weight: 700;">User,</strong>
                            </p>
                            <p style="margin: 10px 0 25px 0; font-size: 14px; color: #333; line-height: 1.5;">
                                This is your one time verification code.
                            </p>
                            <table width="100%" cellpadding="0" cellspacing="0" border="0">
                                <tr>
                                    <td align="center" style="padding: 25px 0; background-color: #f5f5f5; border-radius: 4px;">
                                        <h2 style="margin: 0; font-size: 32px; color: #111; letter-spacing: 8px; font-weight: 700;">
                                            {{.Digits}}
                                        </h2>
                                    </td>
                                </tr>
                            </table>
                            <hr style="background: #E6E6E6; border: none; height: 1px; margin: 25px 0;">
                            <p style="margin: 0 0 20px 0; font-size: 13px; color: #333; line-height: 1.6;">
                                This code is valid for {{.ValidFor}}. Once the code expires, you have to resubmit a request for code.
                            </p>
                            <p style="margin: 0 0 5px 0; font-size: 14px; color: #333333; font-weight: 600;">
                                Best regards,
                            </p>
                            <p style="margin: 0; font-size: 14px; color: #333333; font-weight: 600;">
                                The Glintler Team
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`))

type emailData struct {
	Digits   string
	ValidFor string
}

// renderEmailHTML builds the OTP mail body. Digits are space-separated to
// match the wide-letter-spacing layout.
func renderEmailHTML(code, validFor string) (string, error) {
	var b strings.Builder
	err := emailTmpl.Execute(&b, emailData{
		Digits:   strings.Join(strings.Split(code, ""), " "),
		ValidFor: validFor,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
