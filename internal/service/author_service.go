package service

import (
	"Folio/internal/api/dto"
	"Folio/internal/model"
	"Folio/internal/repository"
	"context"
	"strings"
)

type AuthorService interface {
	ListAuthors(ctx context.Context, search string) ([]*dto.AuthorDTO, error)
	CreateAuthor(ctx context.Context, req *dto.AuthorFormDTO) (*dto.AuthorDTO, error)
}

type authorServiceImpl struct {
	authorRepo repository.AuthorRepo
}

func NewAuthorService(authorRepo repository.AuthorRepo) AuthorService {
	return &authorServiceImpl{authorRepo: authorRepo}
}

// ListAuthors 作者下拉选项
func (s *authorServiceImpl) ListAuthors(ctx context.Context, search string) ([]*dto.AuthorDTO, error) {
	authors, err := s.authorRepo.ListAuthors(ctx, search)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.AuthorDTO, 0, len(authors))
	for _, a := range authors {
		res = append(res, &dto.AuthorDTO{ID: a.ID, Name: a.Name})
	}
	return res, nil
}

func (s *authorServiceImpl) CreateAuthor(ctx context.Context, req *dto.AuthorFormDTO) (*dto.AuthorDTO, error) {
	req.Name = strings.TrimSpace(req.Name)
	ve, err := validateStruct(req)
	if err != nil {
		return nil, err
	}
	if err = ve.OrNil(); err != nil {
		return nil, err
	}

	author := &model.Author{Name: req.Name}
	if err = s.authorRepo.CreateAuthor(ctx, author); err != nil {
		return nil, err
	}
	return &dto.AuthorDTO{ID: author.ID, Name: author.Name}, nil
}
