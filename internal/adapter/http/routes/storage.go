package routes

import (
	"context"
	"fmt"

	"paintshop_lots/internal/adapter/persistence/memory"
	"paintshop_lots/internal/adapter/persistence/repository"
	"paintshop_lots/internal/config"
	"paintshop_lots/internal/domain/entities"
	"paintshop_lots/internal/infrastructure/database"
	"paintshop_lots/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

type repositories struct {
	lots        interfaces.ILotRepository
	history     interfaces.IHistoryRepository
	direct      interfaces.IFinancialRecordRepository
	converted   interfaces.IFinancialRecordRepository
	obligations interfaces.IObligationRepository
}

func newRepositories(ctx context.Context, cfg *config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		return repositories{
			lots:        repository.NewLotDynamoRepository(ddb, cfg.LotsTable, cfg.HistoryTable, cfg.StationsTable),
			history:     repository.NewHistoryDynamoRepository(ddb, cfg.HistoryTable),
			direct:      repository.NewFinancialRecordDynamoRepository(ddb, cfg.DirectRecordsTable, entities.SourceDirect),
			converted:   repository.NewFinancialRecordDynamoRepository(ddb, cfg.ConvertedRecordsTable, entities.SourceConverted),
			obligations: repository.NewObligationDynamoRepository(ddb, cfg.ObligationsTable, cfg.ConvertedRecordsTable),
		}, nil
	case StorageMemory:
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return repositories{
			lots:        store.Lots(),
			history:     store.History(),
			direct:      store.Records(entities.SourceDirect),
			converted:   store.Records(entities.SourceConverted),
			obligations: store.Obligations(),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
