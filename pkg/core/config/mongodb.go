package config

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoConfig struct {
	URI            string `yaml:"uri"`
	DBName         string `yaml:"db-name"`
	MaxPoolSize    uint64 `yaml:"max-pool-size"`
	ConnectTimeout int    `yaml:"connect-timeout"` // 秒
}

func InitMongo(ctx context.Context, config MongoConfig) (*mongo.Client, *mongo.Database, error) {
	if config.DBName == "" {
		return nil, nil, errors.New("数据库名不存在")
	}

	timeout := time.Duration(config.ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	poolSize := config.MaxPoolSize
	if poolSize == 0 {
		poolSize = 100
	}

	opts := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(poolSize).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, client.Database(config.DBName), nil
}
