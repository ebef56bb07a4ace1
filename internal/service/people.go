package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/dutchie/internal/models"
	"github.com/mmynk/dutchie/pkg/api"
)

// AddPerson appends a person. A blank name is allowed and shows as
// "Unnamed" until it is filled in.
func (s *LedgerService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	person := &models.Person{Name: strings.TrimSpace(req.Msg.Name)}
	if err := s.store.AddPerson(ctx, sid, person); err != nil {
		return nil, toConnectError("AddPerson", err)
	}
	slog.Debug("Person added", "session_id", sid, "person_id", person.ID)

	return connect.NewResponse(&api.AddPersonResponse{Person: toAPIPerson(*person)}), nil
}

// RenamePerson changes a person's name.
func (s *LedgerService) RenamePerson(ctx context.Context, req *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.RenamePersonResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.PersonID == "" {
		return nil, invalidArgument("person_id is required")
	}

	person := models.Person{ID: req.Msg.PersonID, Name: strings.TrimSpace(req.Msg.Name)}
	if err := s.store.RenamePerson(ctx, sid, person.ID, person.Name); err != nil {
		return nil, toConnectError("RenamePerson", err)
	}

	return connect.NewResponse(&api.RenamePersonResponse{Person: toAPIPerson(person)}), nil
}

// RemovePerson deletes a person along with their assignments and payer
// selections.
func (s *LedgerService) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.PersonID == "" {
		return nil, invalidArgument("person_id is required")
	}

	if err := s.store.RemovePerson(ctx, sid, req.Msg.PersonID); err != nil {
		return nil, toConnectError("RemovePerson", err)
	}
	slog.Debug("Person removed", "session_id", sid, "person_id", req.Msg.PersonID)

	return connect.NewResponse(&api.RemovePersonResponse{}), nil
}

// ListPeople returns people in the order they were added.
func (s *LedgerService) ListPeople(ctx context.Context, req *connect.Request[api.ListPeopleRequest]) (*connect.Response[api.ListPeopleResponse], error) {
	sid, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	people, err := s.store.ListPeople(ctx, sid)
	if err != nil {
		return nil, toConnectError("ListPeople", err)
	}

	return connect.NewResponse(&api.ListPeopleResponse{People: toAPIPeople(people)}), nil
}
