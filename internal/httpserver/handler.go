package httpserver

import (
	appointmentHTTP "sitekit-api/internal/appointment/delivery/http"
	appointmentRepo "sitekit-api/internal/appointment/repository/postgre"
	appointmentUC "sitekit-api/internal/appointment/usecase"
	authHTTP "sitekit-api/internal/auth/delivery/http"
	authRepo "sitekit-api/internal/auth/repository/postgre"
	authUC "sitekit-api/internal/auth/usecase"
	blogHTTP "sitekit-api/internal/blog/delivery/http"
	blogRepo "sitekit-api/internal/blog/repository/postgre"
	blogUC "sitekit-api/internal/blog/usecase"
	contactHTTP "sitekit-api/internal/contact/delivery/http"
	contactRepo "sitekit-api/internal/contact/repository/postgre"
	contactUC "sitekit-api/internal/contact/usecase"
	"sitekit-api/internal/hub"
	"sitekit-api/internal/middleware"
	notificationHTTP "sitekit-api/internal/notification/delivery/http"
	notificationWS "sitekit-api/internal/notification/delivery/ws"
	notificationRepo "sitekit-api/internal/notification/repository/postgre"
	notificationUC "sitekit-api/internal/notification/usecase"
	paymentHTTP "sitekit-api/internal/payment/delivery/http"
	paymentStripe "sitekit-api/internal/payment/stripe"
	paymentUC "sitekit-api/internal/payment/usecase"
	projectHTTP "sitekit-api/internal/project/delivery/http"
	projectRepo "sitekit-api/internal/project/repository/postgre"
	projectUC "sitekit-api/internal/project/usecase"
	roadmapHTTP "sitekit-api/internal/roadmap/delivery/http"
	roadmapRepo "sitekit-api/internal/roadmap/repository/postgre"
	roadmapUC "sitekit-api/internal/roadmap/usecase"
	searchHTTP "sitekit-api/internal/search/delivery/http"
	searchUC "sitekit-api/internal/search/usecase"
	settingHTTP "sitekit-api/internal/setting/delivery/http"
	settingRepo "sitekit-api/internal/setting/repository/postgre"
	settingUC "sitekit-api/internal/setting/usecase"
	uploadHTTP "sitekit-api/internal/upload/delivery/http"
	uploadUC "sitekit-api/internal/upload/usecase"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	mw := middleware.New(srv.logger, srv.jwtMgr)
	api := srv.gin.Group(Api)

	// Notifications first: booking and contact creation push through it.
	notifUC := notificationUC.New(srv.logger, notificationRepo.New(srv.logger, srv.db), srv.hub)

	authHTTP.New(srv.logger, authUC.New(srv.logger, authRepo.New(srv.logger, srv.db), srv.jwtMgr), srv.discord).
		RegisterRoutes(api, mw)
	blogHTTP.New(srv.logger, blogUC.New(srv.logger, blogRepo.New(srv.logger, srv.db)), srv.discord).
		RegisterRoutes(api, mw)
	appointmentHTTP.New(srv.logger, appointmentUC.New(srv.logger, appointmentRepo.New(srv.logger, srv.db), notifUC), srv.discord).
		RegisterRoutes(api, mw)
	contactHTTP.New(srv.logger, contactUC.New(srv.logger, contactRepo.New(srv.logger, srv.db), notifUC), srv.discord).
		RegisterRoutes(api, mw)
	projectHTTP.New(srv.logger, projectUC.New(srv.logger, projectRepo.New(srv.logger, srv.db)), srv.discord).
		RegisterRoutes(api, mw)
	roadmapHTTP.New(srv.logger, roadmapUC.New(srv.logger, roadmapRepo.New(srv.logger, srv.db)), srv.discord).
		RegisterRoutes(api, mw)
	settingHTTP.New(srv.logger, settingUC.New(srv.logger, settingRepo.New(srv.logger, srv.db)), srv.discord).
		RegisterRoutes(api, mw)
	notificationHTTP.New(srv.logger, notifUC, srv.discord).
		RegisterRoutes(api, mw)

	paymentHTTP.New(srv.logger, paymentUC.New(srv.logger, paymentStripe.New(srv.logger, srv.stripeCfg.SecretKey)), srv.discord).
		RegisterRoutes(api, mw)
	uploadHTTP.New(srv.logger, uploadUC.New(srv.logger, srv.storage, srv.minioCfg), srv.discord).
		RegisterRoutes(api, mw)
	searchHTTP.New(srv.logger, searchUC.New(srv.logger, srv.siteCfg), srv.discord).
		RegisterRoutes(api, mw)

	// Push transport
	notificationWS.New(srv.logger, srv.hub, notificationWS.Config{
		ReadBufferSize:  srv.wsConfig.ReadBufferSize,
		WriteBufferSize: srv.wsConfig.WriteBufferSize,
		Connection: hub.WSConfig{
			PingInterval:   srv.wsConfig.PingInterval,
			PongWait:       srv.wsConfig.PongWait,
			WriteWait:      srv.wsConfig.WriteWait,
			MaxMessageSize: srv.wsConfig.MaxMessageSize,
		},
	}).RegisterRoutes(api)

	return nil
}
