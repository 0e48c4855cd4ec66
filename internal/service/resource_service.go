package service

import (
	"github.com/ebeyer/lapwise/internal/apperr"
	"github.com/ebeyer/lapwise/internal/dto"
	"github.com/ebeyer/lapwise/internal/model"
	"github.com/ebeyer/lapwise/internal/repository"
	"github.com/rs/zerolog/log"
)

type ResourceService interface {
	Create(actor *model.User, req dto.ResourceCreateRequest) (*dto.ResourceWithCreatorResponse, error)
	Get(actor *model.User, id uint) (*dto.ResourceWithCreatorResponse, error)
	List(actor *model.User, standardID *uint, includePublic bool, skip, limit int) ([]dto.ResourceResponse, error)
	Update(actor *model.User, id uint, req dto.ResourceUpdateRequest) (*dto.ResourceResponse, error)
	Delete(actor *model.User, id uint) error
	LinkStandard(actor *model.User, req dto.StandardLinkRequest) (*dto.ResourceWithStandardsResponse, error)
	LinkStandards(actor *model.User, req dto.StandardMultiLinkRequest, ignoreMissing bool) (*dto.ResourceWithStandardsResponse, error)
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
	standardRepo repository.StandardRepository
}

func NewResourceService(resourceRepo repository.ResourceRepository, standardRepo repository.StandardRepository) ResourceService {
	return &resourceService{resourceRepo: resourceRepo, standardRepo: standardRepo}
}

func (s *resourceService) Create(actor *model.User, req dto.ResourceCreateRequest) (*dto.ResourceWithCreatorResponse, error) {
	resource := model.Resource{
		Name:      req.Name,
		Private:   true,
		Format:    model.FormatFlashcard,
		CreatorID: actor.ID,
	}
	if req.Private != nil {
		resource.Private = *req.Private
	}
	if req.Format != "" {
		resource.Format = model.ResourceFormat(req.Format)
	}
	if err := s.resourceRepo.Create(&resource); err != nil {
		return nil, err
	}
	creator := toUserResponse(actor)
	return &dto.ResourceWithCreatorResponse{
		ResourceResponse: toResourceResponse(&resource),
		Creator:          &creator,
	}, nil
}

// Get enforces the visibility rule: a resource is readable when it is public
// or the actor created it. Creator identity is only disclosed to the creator.
func (s *resourceService) Get(actor *model.User, id uint) (*dto.ResourceWithCreatorResponse, error) {
	resource, err := s.resourceRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if resource.Private && resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource with ID %d.", id)
	}
	resp := dto.ResourceWithCreatorResponse{ResourceResponse: toResourceResponse(resource)}
	if resource.CreatorID == actor.ID {
		creator := toUserResponse(actor)
		resp.Creator = &creator
	}
	return &resp, nil
}

// List returns the actor's own resources, or, when standardID is given, the
// resources linked to that standard the actor may see (own plus, when
// includePublic is set, public ones).
func (s *resourceService) List(actor *model.User, standardID *uint, includePublic bool, skip, limit int) ([]dto.ResourceResponse, error) {
	var resources []model.Resource
	var err error
	if standardID == nil {
		resources, err = s.resourceRepo.ByCreator(actor.ID)
	} else {
		if _, err = s.standardRepo.Get(*standardID); err != nil {
			return nil, err
		}
		var linked []model.Resource
		linked, err = s.resourceRepo.ByStandard(*standardID)
		if err == nil {
			for _, r := range linked {
				if r.CreatorID == actor.ID || (includePublic && !r.Private) {
					resources = append(resources, r)
				}
			}
		}
	}
	if err != nil {
		return nil, err
	}

	if skip > len(resources) {
		skip = len(resources)
	}
	end := skip + limit
	if end > len(resources) {
		end = len(resources)
	}
	page := resources[skip:end]

	resps := make([]dto.ResourceResponse, 0, len(page))
	for i := range page {
		resps = append(resps, toResourceResponse(&page[i]))
	}
	return resps, nil
}

func (s *resourceService) Update(actor *model.User, id uint, req dto.ResourceUpdateRequest) (*dto.ResourceResponse, error) {
	resource, err := s.resourceRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource with ID %d.", id)
	}
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Private != nil {
		fields["private"] = *req.Private
	}
	if req.Format != nil {
		fields["format"] = *req.Format
	}
	if err := s.resourceRepo.Update(resource, fields); err != nil {
		return nil, err
	}
	resp := toResourceResponse(resource)
	return &resp, nil
}

// Delete refuses while any lap has been recorded against a goal link of this
// resource; attempt history must stay intact. Otherwise the resource goes
// away together with its cards and links.
func (s *resourceService) Delete(actor *model.User, id uint) error {
	resource, err := s.resourceRepo.Get(id)
	if err != nil {
		return err
	}
	if resource.CreatorID != actor.ID {
		return apperr.Forbiddenf("Not creator of Resource with ID %d.", id)
	}
	laps, err := s.resourceRepo.LapCount(id)
	if err != nil {
		return err
	}
	if laps > 0 {
		return apperr.Conflictf("Resource with ID %d has laps recorded against it and cannot be deleted", id)
	}
	return s.resourceRepo.DeleteWithLinks(id)
}

func (s *resourceService) LinkStandard(actor *model.User, req dto.StandardLinkRequest) (*dto.ResourceWithStandardsResponse, error) {
	resource, err := s.resourceRepo.Get(req.ResourceID)
	if err != nil {
		return nil, err
	}
	if _, err := s.standardRepo.Get(req.StandardID); err != nil {
		return nil, err
	}
	if resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource with ID %d.", resource.ID)
	}
	if err := s.resourceRepo.LinkStandard(resource.ID, req.StandardID); err != nil {
		return nil, err
	}
	return s.resourceWithStandards(resource)
}

// LinkStandards links one resource to several standards. With ignoreMissing
// unset (the default) any unresolvable id aborts the whole operation with a
// 404 naming the missing ids; with it set, the resolvable ones are linked.
// When none of the requested ids exist the operation always fails.
func (s *resourceService) LinkStandards(actor *model.User, req dto.StandardMultiLinkRequest, ignoreMissing bool) (*dto.ResourceWithStandardsResponse, error) {
	ids := dedupe(req.StandardIDs)

	resource, err := s.resourceRepo.Get(req.ResourceID)
	if err != nil {
		return nil, err
	}
	standards, err := s.standardRepo.GetManyByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(standards) == 0 {
		return nil, apperr.NotFoundf("Any Standards with IDs %v not found", ids)
	}
	found := make(map[uint]bool, len(standards))
	for _, std := range standards {
		found[std.ID] = true
	}
	if !ignoreMissing && len(standards) < len(ids) {
		var missing []uint
		for _, id := range ids {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		return nil, apperr.NotFoundf(
			"Some Standard IDs found, but %v not found."+
				" Provide ignore_non_exist_stds=true to force link creation"+
				" to standards that exist in standard_ids list.", missing)
	}
	if resource.CreatorID != actor.ID {
		return nil, apperr.Forbiddenf("Not creator of Resource with ID %d.", resource.ID)
	}

	for _, id := range ids {
		if !found[id] {
			continue
		}
		if err := s.resourceRepo.LinkStandard(resource.ID, id); err != nil {
			log.Error().Err(err).Uint("resourceID", resource.ID).Uint("standardID", id).Msg("Failed to link standard")
			return nil, err
		}
	}
	return s.resourceWithStandards(resource)
}

func (s *resourceService) resourceWithStandards(resource *model.Resource) (*dto.ResourceWithStandardsResponse, error) {
	standards, err := s.resourceRepo.Standards(resource.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.ResourceWithStandardsResponse{
		ResourceResponse: toResourceResponse(resource),
		Standards:        make([]dto.StandardResponse, 0, len(standards)),
	}
	for i := range standards {
		resp.Standards = append(resp.Standards, toStandardResponse(&standards[i]))
	}
	return &resp, nil
}

// dedupe drops repeated ids while preserving first-seen order.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
