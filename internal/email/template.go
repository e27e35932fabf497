// internal/email/template.go
package email

import (
	"fmt"
	"html"
	"strings"

	"launch-assistant/internal/models"
)

// PlanSubject is the subject line for every plan email.
const PlanSubject = "Your High-Impact Launch Plan 🚀"

// RenderPlanHTML builds the plan email body. Plan text is escaped before
// interpolation since AI-sourced strategies are untrusted input.
func RenderPlanHTML(firstName string, plan *models.Plan) string {
	var strategies strings.Builder
	for _, s := range plan.Strategies {
		strategies.WriteString(fmt.Sprintf("<li>%s</li>", html.EscapeString(s.Text())))
	}

	var nextSteps strings.Builder
	for _, step := range plan.NextSteps {
		nextSteps.WriteString(fmt.Sprintf("<li>%s</li>", html.EscapeString(step)))
	}

	return fmt.Sprintf(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333333;">
    <p>Hey %s,</p>

    <p>First off—big congrats on building %s. I know firsthand how intense launching a startup can be, and I built Moxie AI to help founders like you get the visibility you need to succeed.</p>

    <p>Based on what you shared, here's your high-impact launch plan:</p>

    <p style="background-color: #f8f9fa; padding: 15px; border-radius: 5px;">
        🔹 <strong>Launch Type:</strong> %s<br>
        🔹 <strong>Funding Stage:</strong> %s<br>
        🔹 <strong>Your Primary Goal:</strong> %s
    </p>

    <p><strong>%s</strong></p>

    <div style="background-color: #f1f3f5; padding: 20px; border-radius: 5px; border-left: 5px solid #FF5A5F; margin: 20px 0;">
        <p style="font-weight: bold; font-size: 18px;">✨ Your Personalized Launch Strategies:</p>
        <ul>
            %s
        </ul>
    </div>

    <p style="font-weight: bold;">📌 Your Next Steps:</p>
    <ol>
        %s
    </ol>

    <p>💡 <strong>Ready to execute?</strong> You can take one of these three paths:</p>

    <p>
        1️⃣ <strong>DIY ($29/month):</strong> Get an automated weekly launch roadmap so you stay on track.<br>
        2️⃣ <strong>Coaching ($500/month):</strong> Get direct guidance &amp; accountability to keep momentum.<br>
        3️⃣ <strong>Full-Service ($5K over 3 months):</strong> Let us run your launch for you.
    </p>

    <p>📅 If you ever want a deeper strategy session, let's chat. Otherwise, keep me posted—I'll be cheering for you.</p>

    <p>
        Best,<br>
        <strong>Steph</strong>
    </p>
</body>
</html>`,
		html.EscapeString(firstName),
		html.EscapeString(plan.Summary.StartupName),
		html.EscapeString(plan.Summary.LaunchType),
		html.EscapeString(plan.Summary.FundingStatus),
		html.EscapeString(plan.Summary.PrimaryGoal),
		html.EscapeString(plan.MessagingAdvice),
		strategies.String(),
		nextSteps.String(),
	)
}
