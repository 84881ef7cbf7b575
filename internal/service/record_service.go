package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/granger49/Protocol/internal/error_values"
	"github.com/granger49/Protocol/internal/repository"
	"github.com/granger49/Protocol/pkg/entity"
)

type RecordService struct {
	repo repository.RecordsRepositoryI
}

func NewRecordService(recordsRepo repository.RecordsRepositoryI) *RecordService {
	if recordsRepo == nil {
		log.Fatal("provided nil recordsRepo")
	}
	return &RecordService{
		repo: recordsRepo,
	}
}

func (rs *RecordService) ListRecords(ctx context.Context, uid uuid.UUID, exerciseName string) ([]entity.PersonalRecord, error) {
	records, err := rs.repo.GetByUserID(ctx, uid, exerciseName)
	if err != nil {
		return nil, errors.New("records repository error: " + err.Error())
	}
	return records, nil
}

func (rs *RecordService) UpsertRecord(ctx context.Context, uid uuid.UUID, req *UpsertRecordRequest) (*entity.PersonalRecord, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	record, err := rs.repo.Upsert(ctx, &entity.PersonalRecord{
		UserID:       uid,
		ExerciseName: req.ExerciseName,
		Weight:       req.Weight,
		Reps:         req.Reps,
		Sets:         req.Sets,
		Date:         req.Date,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("records repository error: " + err.Error())
	}
	return record, nil
}
