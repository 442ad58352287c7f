package rest

const (
	// api
	RouteAPI = "/api"

	RouteContacts   = RouteAPI + "/contacts"
	RouteContact    = RouteContacts + "/:contact_id"
	RouteRecoverAll = RouteContacts + "/recover"
	RouteRecoverOne = RouteRecoverAll + "/:contact_id"

	// static pictures
	RouteUploads = "/uploads"

	// ops
	RouteHealth  = RouteAPI + "/healthz"
	RouteMetrics = RouteAPI + "/metrics"
)
