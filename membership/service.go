package membership

import (
	"time"

	"encore.dev/rlog"
	"github.com/go-playground/validator/v10"

	"encore.app/membership/business/request"
	"encore.app/membership/business/status"
	"encore.app/membership/middleware/flowguard"
	"encore.app/membership/token"
	"encore.app/upstream"
	"encore.app/upstream/automation"
	"encore.app/upstream/orchestrator"
)

var validate = validator.New()

// Client registry instance names.
const (
	automationClientName   = "automation-platform"
	orchestratorClientName = "orchestrator"
)

//encore:service
type Service struct {
	tokens  token.Codec
	status  status.Business
	request request.Business
}

func initService() (*Service, error) {
	registry := upstream.NewRegistry()
	registry.Register(automationClientName, upstream.NewHTTPClient(time.Duration(cfg.Automation.TimeoutSeconds())*time.Second))
	registry.Register(orchestratorClientName, upstream.NewHTTPClient(time.Duration(cfg.Orchestrator.TimeoutSeconds())*time.Second))

	tokens, err := token.NewCodec(secrets.RequestTokenSigningKey, nil)
	if err != nil {
		return nil, err
	}

	automationGW := automation.NewClient(automation.Config{
		BaseURL:  cfg.Automation.BaseURL(),
		Username: cfg.Automation.Username(),
		Password: secrets.AutomationPassword,
	}, registry.Client(automationClientName))

	orchestratorGW := orchestrator.NewClient(orchestrator.Config{
		BaseURL:            cfg.Orchestrator.BaseURL(),
		ClientID:           cfg.Orchestrator.ClientID(),
		ClientSecret:       secrets.OrchestratorClientSecret,
		TenancyName:        cfg.Orchestrator.TenancyName(),
		OrganizationUnitID: cfg.Orchestrator.OrganizationUnitID(),
	}, registry.Client(orchestratorClientName))

	flowguard.Configure(flowguard.Policy{
		Endpoints: map[string]bool{
			"AddUserToProject":           cfg.Flows.AddUser(),
			"GetMembershipRequestStatus": cfg.Flows.StatusPolling(),
		},
	})

	rlog.Info("initializing membership service",
		"automation_url", cfg.Automation.BaseURL(),
		"orchestrator_enabled", cfg.Orchestrator.Enabled(),
	)

	return &Service{
		tokens: tokens,
		status: status.NewStatusBusiness(tokens, automationGW, orchestratorGW),
		request: request.NewRequestBusiness(request.Config{
			WorkflowTemplate:    cfg.Automation.WorkflowTemplate(),
			OrchestratorEnabled: cfg.Orchestrator.Enabled(),
			QueueName:           cfg.Orchestrator.QueueName(),
			TokenLifetime:       time.Duration(cfg.TokenLifetimeHours()) * time.Hour,
			AllowedRoles:        cfg.AllowedRoles(),
			AllowedEnvironments: cfg.AllowedEnvironments(),
		}, tokens, automationGW, orchestratorGW),
	}, nil
}
