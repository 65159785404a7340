package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"catalog_service/internal/clients"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type ctlConfig struct {
	Addr    string        `envconfig:"CATALOG_GRPC_ADDR" default:"localhost:50051"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"5s"`
}

const usage = `usage: catalogctl [-addr host:port] <command> [id]

commands:
  categories       list all categories
  category <id>    show one category
  products         list all products
  product <id>     show one product
  delete-category <id>
  delete-product <id>`

var errUsage = errors.New(usage)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	var cfg ctlConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatalf("Failed to process configuration: %v", err)
	}
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "catalog gRPC address")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	client, err := clients.NewCatalogGRPCClient(cfg.Addr, logger)
	if err != nil {
		logger.Fatalf("Failed to create catalog client: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := run(ctx, client, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client clients.CatalogClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	var result interface{}
	var err error
	switch args[0] {
	case "categories":
		result, err = client.ListCategories(ctx)
	case "products":
		result, err = client.ListProducts(ctx)
	case "category", "product", "delete-category", "delete-product":
		id, idErr := parseID(args)
		if idErr != nil {
			return idErr
		}
		switch args[0] {
		case "category":
			result, err = client.GetCategory(ctx, id)
		case "product":
			result, err = client.GetProduct(ctx, id)
		case "delete-category":
			err = client.DeleteCategory(ctx, id)
		case "delete-product":
			err = client.DeleteProduct(ctx, id)
		}
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if result == nil {
		return nil
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func parseID(args []string) (int, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("%s needs exactly one id\n%w", args[0], errUsage)
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", args[1])
	}
	return id, nil
}
