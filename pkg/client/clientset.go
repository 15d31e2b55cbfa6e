package client

// ClientSet contains all the sub-clients for different backend areas
type ClientSet struct {
	baseClient *BaseClient

	Health      Health
	Auth        Auth
	Database    Database
	Metadata    Metadata
	Storage     Storage
	Functions   Functions
	Logs        Logs
	Docs        Docs
	Schedules   Schedules
	Deployments Deployments
	Templates   Templates
	Usage       Usage
}

// New creates a new Stackbase client set
func New(baseURL string, options ...ClientOption) *ClientSet {
	baseClient := NewBaseClient(baseURL, options...)

	return &ClientSet{
		baseClient:  baseClient,
		Health:      NewHealthClient(baseClient),
		Auth:        NewAuthClient(baseClient),
		Database:    NewDatabaseClient(baseClient),
		Metadata:    NewMetadataClient(baseClient),
		Storage:     NewStorageClient(baseClient),
		Functions:   NewFunctionsClient(baseClient),
		Logs:        NewLogsClient(baseClient),
		Docs:        NewDocsClient(baseClient),
		Schedules:   NewSchedulesClient(baseClient),
		Deployments: NewDeploymentsClient(baseClient),
		Templates:   NewTemplatesClient(baseClient),
		Usage:       NewUsageClient(baseClient),
	}
}

// Base exposes the underlying base client, mainly for tests.
func (c *ClientSet) Base() *BaseClient {
	return c.baseClient
}
