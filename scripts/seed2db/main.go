package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/reswipe/reswipe/internal/entities"
	"github.com/reswipe/reswipe/internal/service"
	"github.com/reswipe/reswipe/internal/service/impl"
	"github.com/reswipe/reswipe/internal/storage/postgres"
)

var opts = struct {
	Seed               string `long:"seed" env:"SEED" default:"seed.json" description:"path to seed file"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
}{}

type seed struct {
	Users []struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"users"`
	Posts []struct {
		PosterID    string  `json:"poster_id"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		ImageURL    string  `json:"image_url"`
		Quantity    *int32  `json:"quantity"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Address     string  `json:"address"`
		// TTL is a lifetime of the post counted from the import, e.g. "3h".
		TTL string `json:"ttl"`
	} `json:"posts"`
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seed2db"
	parser.LongDescription = "Users and posts importer for development databases"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("seed2db started")
	logrus.Infof("%+v", opts)

	b, err := ioutil.ReadFile(opts.Seed)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read seed")
	}

	var sd seed

	if err := json.Unmarshal(b, &sd); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal seed")
	}

	db := mustGetDB()
	defer db.Close()

	srv := impl.New(postgres.New(db, 3), impl.DefaultConfig())
	ctx := context.Background()

	logrus.Info("import users")
	for i, v := range sd.Users {
		if _, err := srv.SetupProfile(ctx, v.ID, v.DisplayName); err != nil {
			logrus.WithError(err).WithField("user", v.ID).Fatal("failed to put user into db")
		}

		if i%20 == 0 {
			logrus.Infof("%d of %d users imported", i+1, len(sd.Users))
		}
	}

	logrus.Info("import posts")
	for i, v := range sd.Posts {
		ttl, err := time.ParseDuration(v.TTL)
		if err != nil {
			logrus.WithError(err).WithField("post", i).Fatal("failed to parse post ttl")
		}

		p, err := srv.CreatePost(ctx, &service.CreatePostParams{
			PosterID:    v.PosterID,
			Title:       v.Title,
			Description: v.Description,
			ImageURL:    v.ImageURL,
			Quantity:    v.Quantity,
			Location: entities.Location{
				Latitude:  v.Latitude,
				Longitude: v.Longitude,
				Address:   v.Address,
			},
			ExpiresAt: time.Now().UTC().Add(ttl),
		})
		if err != nil {
			logrus.WithError(err).WithField("post", i).Fatal("failed to put post into db")
		}

		logrus.WithField("id", p.ID).Debug("post imported")

		if i%20 == 0 {
			logrus.Infof("%d of %d posts imported", i+1, len(sd.Posts))
		}
	}

	logrus.Info("done")
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
