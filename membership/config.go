package membership

import "encore.dev/config"

// AutomationConfig points at one automation platform instance.
type AutomationConfig struct {
	BaseURL          config.String
	Username         config.String
	WorkflowTemplate config.String
	TimeoutSeconds   config.Int
}

// OrchestratorConfig points at one orchestrator instance. Enabled toggles
// the follow-up queue step for new requests.
type OrchestratorConfig struct {
	Enabled            config.Bool
	BaseURL            config.String
	ClientID           config.String
	TenancyName        config.String
	OrganizationUnitID config.String
	QueueName          config.String
	TimeoutSeconds     config.Int
}

// FlowConfig toggles the membership flows exposed by this service.
type FlowConfig struct {
	AddUser       config.Bool
	StatusPolling config.Bool
}

type Config struct {
	TokenLifetimeHours  config.Int
	AllowedRoles        config.Values[string]
	AllowedEnvironments config.Values[string]
	Automation          AutomationConfig
	Orchestrator        OrchestratorConfig
	Flows               FlowConfig
}

var cfg = config.Load[*Config]()

var secrets struct {
	// RequestTokenSigningKey signs request tokens; at least 32 bytes.
	RequestTokenSigningKey string
	// AutomationPassword is the basic-auth password for the automation
	// platform.
	AutomationPassword string
	// OrchestratorClientSecret authenticates against the orchestrator.
	OrchestratorClientSecret string
}
