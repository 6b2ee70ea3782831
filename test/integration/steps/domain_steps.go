package steps

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// registerDomainSteps registers clock, fixture and email provider steps.
func registerDomainSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the current time is "([^"]*)"$`, theCurrentTimeIs)
	ctx.Step(`^a project "([^"]*)" with (\d+) apartments and (\d+) shops exists as "([^"]*)"$`, aProjectExistsAs)
	ctx.Step(`^the email provider responds with status (\d+)$`, theEmailProviderRespondsWithStatus)
	ctx.Step(`^the email provider should have received (\d+) emails?$`, theEmailProviderShouldHaveReceived)
	ctx.Step(`^the last email should be addressed to "([^"]*)"$`, theLastEmailShouldBeAddressedTo)
	ctx.Step(`^the last email subject should contain "([^"]*)"$`, theLastEmailSubjectShouldContain)
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	current, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	shared.timeMock.SetCurrentTime(current)
	return nil
}

func aProjectExistsAs(ctx context.Context, name string, apartments, shops int, key string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"name":%q,"location":"Cairo","apartments_count":%d,"shops_count":%d}`, name, apartments, shops)
	if err := tc.send(http.MethodPost, "/api/v1/projects", bytes.NewBufferString(body)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("failed to create project %q: status %d, body %s", name, tc.response.StatusCode, string(tc.responseBody))
	}

	id, err := tc.field("id")
	if err != nil {
		return ctx, err
	}
	tc.saved[key] = fmt.Sprintf("%v", id)
	return ctx, nil
}

func theEmailProviderRespondsWithStatus(ctx context.Context, status int) error {
	response := map[string]any{"id": "email-1"}
	if status >= http.StatusBadRequest {
		response = map[string]any{"statusCode": status, "name": "error", "message": http.StatusText(status)}
	}
	shared.resend.SetResponse(http.MethodPost, emailsPath, status, response)
	return nil
}

func theEmailProviderShouldHaveReceived(ctx context.Context, count int) error {
	if got := shared.resend.RequestCount(http.MethodPost, emailsPath); got != count {
		return fmt.Errorf("expected %d emails, got %d", count, got)
	}
	return nil
}

func lastEmail() (map[string]any, error) {
	count := shared.resend.RequestCount(http.MethodPost, emailsPath)
	if count == 0 {
		return nil, fmt.Errorf("no email was sent")
	}
	body := shared.resend.GetRequestBody(http.MethodPost, emailsPath, count-1)
	if body == nil {
		return nil, fmt.Errorf("email request body is not JSON")
	}
	return body, nil
}

func theLastEmailShouldBeAddressedTo(ctx context.Context, address string) error {
	body, err := lastEmail()
	if err != nil {
		return err
	}
	recipients := fmt.Sprintf("%v", body["to"])
	if !strings.Contains(recipients, address) {
		return fmt.Errorf("expected email to %q, got %s", address, recipients)
	}
	return nil
}

func theLastEmailSubjectShouldContain(ctx context.Context, text string) error {
	body, err := lastEmail()
	if err != nil {
		return err
	}
	subject, _ := body["subject"].(string)
	if !strings.Contains(subject, text) {
		return fmt.Errorf("expected subject to contain %q, got %q", text, subject)
	}
	return nil
}
