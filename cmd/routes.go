package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	baseMiddleware := alice.New(app.requestID, app.logRequest, app.recoverPanic, secureHeaders)
	standardMiddleware := baseMiddleware.Append(makeResponseJSON)

	mux := pat.New()

	// Users
	mux.Post("/register", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/login", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/:id", standardMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user/:id", standardMiddleware.ThenFunc(app.userHandler.UpdateUser))

	// Ads
	mux.Get("/ads", standardMiddleware.ThenFunc(app.adHandler.ListAds))
	mux.Post("/ads/add", standardMiddleware.ThenFunc(app.adHandler.CreateAd))
	mux.Put("/ads/update/:id", standardMiddleware.ThenFunc(app.adHandler.UpdateAd))
	mux.Del("/ads/delete/:id", standardMiddleware.ThenFunc(app.adHandler.DeleteAd))
	mux.Get("/ads/:id", standardMiddleware.ThenFunc(app.adHandler.GetAdByID))

	// Favorites
	mux.Post("/favorites/add", standardMiddleware.ThenFunc(app.adFavoriteHandler.AddAdToFavorites))
	mux.Post("/favorites/remove", standardMiddleware.ThenFunc(app.adFavoriteHandler.RemoveAdFromFavorites))
	mux.Get("/favorites/:user_id", standardMiddleware.ThenFunc(app.adFavoriteHandler.GetFavoriteAdsByUser))

	// Messages
	mux.Post("/messages/send", standardMiddleware.ThenFunc(app.messageHandler.SendMessage))
	mux.Get("/messages/:from_id/:to_id", standardMiddleware.ThenFunc(app.messageHandler.GetConversation))
	mux.Get("/chats/:user_id", standardMiddleware.ThenFunc(app.chatHandler.GetChatsByUser))
	mux.Get("/ws/:user_id", baseMiddleware.ThenFunc(app.WebSocketHandler))

	// Photos
	mux.Post("/upload_photo", standardMiddleware.ThenFunc(app.photoHandler.UploadPhoto))
	mux.Get("/static/photos/:filename", baseMiddleware.ThenFunc(app.photoHandler.ServePhoto))

	// Ops
	mux.Get("/healthz", standardMiddleware.ThenFunc(app.healthHandler.Healthz))
	mux.Get("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return mux
}
