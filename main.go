package main

import (
	"context"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ThilakNarasimhamurthy/Dot/api"
	"github.com/ThilakNarasimhamurthy/Dot/external/feed"
	"github.com/ThilakNarasimhamurthy/Dot/store"
)

func initConfig(file string) {
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017")
	viper.SetDefault("mongo.database", "mobility")
	viper.SetDefault("feed.refresh_interval", "5m")
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix("dot")
	viper.AutomaticEnv()

	if file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			log.WithError(err).Fatal("fail to read config file")
		}
	}
}

// refresh pulls one complete snapshot from the feed and supersedes the stored
// one. A failed fetch leaves the previous snapshot serving.
func refresh(feedClient *feed.Client, mobilityStore store.MobilityStore) {
	zones, err := feedClient.FetchZones()
	if err != nil {
		log.WithField("prefix", "feed").WithError(err).Warn("zone fetch failed, previous snapshot keeps serving")
	} else if err := mobilityStore.ReplaceZoneStates(zones); err != nil {
		log.WithField("prefix", "feed").WithError(err).Error("fail to replace zone snapshot")
	}

	segments, err := feedClient.FetchSegments()
	if err != nil {
		log.WithField("prefix", "feed").WithError(err).Warn("segment fetch failed, previous snapshot keeps serving")
	} else if err := mobilityStore.ReplaceSegmentStates(segments); err != nil {
		log.WithField("prefix", "feed").WithError(err).Error("fail to replace segment snapshot")
	}
}

func refreshLoop(feedClient *feed.Client, mobilityStore store.MobilityStore, interval time.Duration) {
	refresh(feedClient, mobilityStore)

	ticker := time.NewTicker(interval)
	for range ticker.C {
		refresh(feedClient, mobilityStore)
	}
}

func main() {
	configFile := flag.String("c", "", "configuration file path")
	flag.Parse()

	initConfig(*configFile)

	if level, err := log.ParseLevel(viper.GetString("log.level")); err == nil {
		log.SetLevel(level)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(viper.GetString("mongo.conn")))
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongo")
	}

	mobilityStore := store.NewMongoStore(client, viper.GetString("mongo.database"))
	defer mobilityStore.Close()

	if endpoint := viper.GetString("feed.endpoint"); endpoint != "" {
		interval := viper.GetDuration("feed.refresh_interval")
		go refreshLoop(feed.New(endpoint), mobilityStore, interval)
	} else {
		log.Warn("no feed endpoint configured, serving stored snapshots only")
	}

	server := api.NewServer(mobilityStore, viper.GetBool("server.trace"))

	log.WithField("address", viper.GetString("server.address")).Info("mobility api started")
	if err := server.Run(viper.GetString("server.address")); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
