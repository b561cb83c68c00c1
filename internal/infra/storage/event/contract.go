package event

import (
	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
