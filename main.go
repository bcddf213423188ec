package main

import (
	"log"
	"net/http"
	"os"

	"github.com/storefront-go/storefront/app/cmd"
	"github.com/storefront-go/storefront/app/configs"
	"github.com/storefront-go/storefront/app/routes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadEnv()

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("database connected")

	router, err := routes.NewRouter(db, env)
	if err != nil {
		log.Fatal("router setup failed:", err)
	}

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped:", err)
	}
}
