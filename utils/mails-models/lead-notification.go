package mailsmodels

import (
	"fmt"
	"os"

	"github.com/eladmalka/gal-fridman-malka-website/utils"
)

// LeadEmailData carries the submitted form fields into the owner notification
type LeadEmailData struct {
	Name          string
	Phone         string
	Email         string
	Status        string
	Goals         string
	ContactMethod string
}

// LeadNotification emails the site owner about a new contact form submission.
// The recipient comes from LEAD_NOTIFY_EMAIL; without it the notification is
// skipped silently so a missing config never affects form submissions.
func LeadNotification(lead LeadEmailData) {
	to := os.Getenv("LEAD_NOTIFY_EMAIL")
	if to == "" {
		utils.LogInfo("LEAD_NOTIFY_EMAIL is not set, skipping lead notification")
		return
	}
	if !utils.ValidateEmail(to) {
		utils.LogError(nil, "LEAD_NOTIFY_EMAIL is not a valid address, skipping lead notification")
		return
	}

	// Click-to-chat link when the lead asked for WhatsApp
	whatsappRow := ""
	if lead.ContactMethod == "whatsapp" && utils.ValidatePhone(lead.Phone) {
		whatsappRow = fmt.Sprintf(`<p style="padding: 8px;"><a href="https://wa.me/972%s">פתיחת שיחה בוואטסאפ</a></p>`, lead.Phone[1:])
	}

	subject := fmt.Sprintf("Subject: פנייה חדשה מ-%s\r\n", lead.Name)
	mime := "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"
	body := fmt.Sprintf(`
	<div dir="rtl" style="font-family: Arial, sans-serif; max-width: 600px;">
		<h2 style="color: #c9a4a0;">פנייה חדשה מהאתר</h2>
		<table style="width: 100%%; border-collapse: collapse;">
			<tbody>
				<tr><td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">שם:</td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>
				<tr><td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">טלפון:</td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>
				<tr><td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">אימייל:</td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>
				<tr><td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">סטטוס זוגי:</td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>
				<tr><td style="padding: 8px; font-weight: bold; border-bottom: 1px solid #eee;">אופן יצירת קשר:</td><td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td></tr>
				<tr><td style="padding: 8px; font-weight: bold;">מה רוצה לשפר:</td><td style="padding: 8px;">%s</td></tr>
			</tbody>
		</table>
		%s
	</div>
`, lead.Name, lead.Phone, lead.Email, lead.Status, lead.ContactMethod, lead.Goals, whatsappRow)

	message := []byte(subject + mime + body)
	utils.SendMail(to, message)
}
