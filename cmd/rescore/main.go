package main

import (
	"context"
	"database/sql"
	"os"

	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/PaoloGuimalan/chatterloop-user-service/internal/notifier"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/score"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/service/impl"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Postgres string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`

	ScoreDecayExponent  float64 `long:"score.decay_exponent" env:"SCORE_DECAY_EXPONENT" default:"0.5" description:"time decay exponent of the ranking score"`
	ScoreBaseEngagement float64 `long:"score.base_engagement" env:"SCORE_BASE_ENGAGEMENT" default:"1" description:"constant added to the weighted engagement sum"`
	ScoreMaxBoost       float64 `long:"score.max_boost" env:"SCORE_MAX_BOOST" default:"5" description:"upper bound of the recent update boost"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "rescore"
	parser.LongDescription = "Batch ranking score refresher"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("rescore started")
	logrus.Infof("%+v", opts)

	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	s := postgres.New(db)
	svc := impl.New(s, notifier.NewNoop(), score.Config{
		DecayExponent:  opts.ScoreDecayExponent,
		BaseEngagement: opts.ScoreBaseEngagement,
		MinBoost:       0,
		MaxBoost:       opts.ScoreMaxBoost,
	})

	ids, err := s.ListPostIDs(context.Background())
	if err != nil {
		logrus.WithError(err).Fatal("failed to list posts")
	}

	failed := 0
	for i, id := range ids {
		if err := svc.RecomputeScore(context.Background(), id); err != nil {
			logrus.WithError(err).WithField("post", id).Error("failed to rescore post")
			failed++
			continue
		}

		if (i+1)%100 == 0 {
			logrus.Infof("%d of %d posts rescored", i+1, len(ids))
		}
	}

	logrus.Infof("done, %d posts rescored, %d failed", len(ids)-failed, failed)

	if failed > 0 {
		os.Exit(1)
	}
}
