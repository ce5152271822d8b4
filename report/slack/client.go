package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/slack-go/slack"

	"github.com/AirHelp/geostat/helper"
	"github.com/AirHelp/geostat/report"
)

type Client struct {
	url      string
	icon     string
	username string
	channel  string
}

func NewClient(url, channel, username string) Client {
	return Client{
		url:      url,
		channel:  channel,
		username: username,
		icon:     "bar_chart",
	}
}

func (c Client) Kind() string {
	return "slack"
}

func (c Client) Report(ctx context.Context, payload report.Payload) error {
	p := payload.Precision

	fields := []slack.AttachmentField{
		{
			Title: "Source",
			Value: payload.Source,
			Short: true,
		},
		{
			Title: "Environment",
			Value: payload.Environment,
			Short: true,
		},
	}

	for _, s := range payload.Summaries {
		fields = append(fields, slack.AttachmentField{
			Title: s.Label,
			Value: fmt.Sprintf("n=%d mean=%v median=%v sd=%v mode=%v",
				s.Count,
				helper.FormatFloat(s.Mean, p),
				helper.FormatFloat(s.Median, p),
				helper.FormatFloat(s.StandardDeviation, p),
				helper.FloatSliceToString(s.Mode, p),
			),
		})
	}

	if matrix := report.FormatMatrix(payload.Matrix, p); matrix != "" {
		fields = append(fields, slack.AttachmentField{
			Title: "Correlation matrix",
			Value: fmt.Sprintf("```\n%v```", matrix),
		})
	}

	att := slack.Attachment{
		Color:      "good",
		AuthorIcon: c.icon,
		Pretext:    "Sample statistics computed",
		Footer:     fmt.Sprintf("geostat @ %v", payload.GeneratedAt.Format(time.RFC3339)),
		Fields:     fields,
	}

	msg := slack.WebhookMessage{
		Username:    c.username,
		IconEmoji:   c.icon,
		Channel:     c.channel,
		Attachments: []slack.Attachment{att},
	}

	return slack.PostWebhookContext(ctx, c.url, &msg)
}
