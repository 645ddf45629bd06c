package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noashair/salon-backend/pkg/booking"
	"github.com/noashair/salon-backend/pkg/communication"
	"github.com/noashair/salon-backend/pkg/email"
	"github.com/noashair/salon-backend/pkg/environment"
	"github.com/noashair/salon-backend/pkg/locking"
	"github.com/noashair/salon-backend/pkg/logger"
	"github.com/noashair/salon-backend/pkg/notifications"
)

func main() {
	var logging logger.Interface = logger.Logger{}
	fmt.Println("Server is starting up...")

	environment.Initialize()

	client, err := mongo.NewClient(options.Client().ApplyURI(environment.Global.DatabaseUrl))
	if err != nil {
		log.Fatal(err)
	}

	var ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client.Connect(ctx)
	if err != nil {
		log.Panic(err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Panic(err)
	}

	defer func() {
		err := client.Disconnect(ctx)
		if err != nil {
			logging.Fatal(err)
		}
	}()

	fmt.Println("Database connected")

	db := client.Database(environment.Global.Database)

	serviceCollection := db.Collection("Services")
	clientCollection := db.Collection("Clients")
	appointmentCollection := db.Collection("Appointments")

	var locker locking.LockerInterface
	var catalogCache booking.CatalogCacheInterface

	if environment.Global.Redis != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     environment.Global.Redis,
			Password: environment.Global.RedisPassword,
		})

		err = redisClient.Ping(ctx).Err()
		if err != nil {
			log.Panic(err)
		}

		locker = locking.NewLockerRedis(redisClient)
		catalogCache = booking.NewCatalogCacheRedis(redisClient)

		fmt.Println("Redis connected")
	} else {
		locker = locking.NewLockerMemory()
		catalogCache, err = booking.NewCatalogCacheMemory()
		if err != nil {
			log.Fatal(err)
		}
	}

	responseManager := communication.ResponseManager{Logger: logging}

	serviceRepository := booking.ServiceRepository{DB: serviceCollection, Logger: logging}
	clientRepository := booking.ClientRepository{DB: clientCollection, Logger: logging}
	appointmentRepository := booking.AppointmentRepository{DB: appointmentCollection, Logger: logging}

	notifier := notifications.NewWebhookNotifier(environment.Global.WebhookUrl, environment.Global.WebhookAPIKey)
	mailer := email.NewSendInBlueService(environment.Global.Sendinblue)

	bookingService := booking.NewBookingService(
		serviceRepository, clientRepository, appointmentRepository,
		catalogCache, notifier, mailer, locker, logging)

	bookingHandler := booking.Handler{
		BookingService:  bookingService,
		Logger:          logging,
		ResponseManager: &responseManager,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)

		_, err := fmt.Fprint(writer, "Welcome to the API! ✔")
		if err != nil {
			log.Printf("Error: %v\n", err)
		}
	})

	r.HandleFunc("/v1/services", bookingHandler.ServiceList).Methods(http.MethodGet)
	r.HandleFunc("/v1/availability", bookingHandler.Availability).Methods(http.MethodGet)
	r.HandleFunc("/v1/appointments", bookingHandler.AppointmentAdd).Methods(http.MethodPost)
	r.HandleFunc("/v1/appointments/cancel", bookingHandler.AppointmentCancel).Methods(http.MethodPost)
	r.HandleFunc("/v1/calendar", bookingHandler.WeekSchedule).Methods(http.MethodGet)
	r.HandleFunc("/v1/calendar/events", bookingHandler.ManualEventAdd).Methods(http.MethodPost)
	r.HandleFunc("/v1/calendar/events/{eventID}", bookingHandler.ManualEventUpdate).Methods(http.MethodPut)
	r.HandleFunc("/v1/calendar/events/{eventID}", bookingHandler.ManualEventDelete).Methods(http.MethodDelete)
	r.HandleFunc("/v1/calendar/appointments/{appointmentID}/cancel", bookingHandler.AdminAppointmentCancel).Methods(http.MethodPost)
	r.HandleFunc("/v1/calendar/export", bookingHandler.CalendarExport).Methods(http.MethodGet)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Content-Type", "application/json")

			if environment.Global.Cors != "" {
				w.Header().Set("Access-Control-Allow-Origin", environment.Global.Cors)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	http.Handle("/", r)
	log.Panic(http.ListenAndServe(":"+environment.Global.Port, r))
}
