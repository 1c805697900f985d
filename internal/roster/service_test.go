package roster

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gameutils/internal/model"
	"github.com/mcoot/gameutils/internal/playerxml"
	"github.com/mcoot/gameutils/internal/registry"
	"github.com/mcoot/gameutils/internal/storage/memory"
	"github.com/mcoot/gameutils/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	registry *registry.Registry
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.registry = registry.New(testutil.NopLogger())
	codec := playerxml.New(s.registry, testutil.NopLogger())
	s.service = New(s.storage, codec, testutil.NopLogger())
	s.ctx = context.Background()
}

// newService returns a service over the same storage with a fresh registry
func (s *ServiceSuite) newService() (*Service, *registry.Registry) {
	reg := registry.New(testutil.NopLogger())
	return New(s.storage, playerxml.New(reg, testutil.NopLogger()), testutil.NopLogger()), reg
}

func (s *ServiceSuite) TestExportThenImport() {
	s.registry.CreatePlayer("Ada", "Lovelace", "countess")
	_, err := s.registry.CreatePlayerWithID(7, "Alan", "Turing", "prof")
	s.Require().NoError(err)

	s.Require().NoError(s.service.Export(s.ctx, "league", ""))

	other, reg := s.newService()
	result, err := other.Import(s.ctx, "league")
	s.Require().NoError(err)
	s.Require().True(result.OK())

	players := result.Players()
	s.Require().Len(players, 2)
	s.Equal(model.Player{ID: 1, FirstName: "Ada", LastName: "Lovelace"}, players[0])
	s.Equal(model.Player{ID: 7, FirstName: "Alan", LastName: "Turing"}, players[1])
	s.Equal(2, reg.Len())
}

func (s *ServiceSuite) TestImportMissingRoster() {
	result, err := s.service.Import(s.ctx, "missing")
	s.Require().NoError(err)
	s.Empty(result.Players())
	s.ErrorIs(result.Diagnostic, model.ErrDocumentNotFound)
}

func (s *ServiceSuite) TestImportMalformedRoster() {
	_ = s.storage.SaveDocument(s.ctx, "broken", []byte("<ROOT><PLAYER"))

	result, err := s.service.Import(s.ctx, "broken")
	s.Require().NoError(err)
	s.Empty(result.Players())
	s.ErrorIs(result.Diagnostic, model.ErrMalformedXML)
}

func (s *ServiceSuite) TestImportIntoOccupiedRegistryFails() {
	_, err := s.registry.CreatePlayerWithID(3, "Ada", "Lovelace", "countess")
	s.Require().NoError(err)
	_ = s.storage.SaveDocument(s.ctx, "league", []byte(`<ROOT><PLAYER id="3" firstName="Alan"/></ROOT>`))

	_, err = s.service.Import(s.ctx, "league")
	s.ErrorIs(err, model.ErrDuplicateID)
}

func (s *ServiceSuite) TestImportFileAndExportFile() {
	in := testutil.WriteTempFile(s.T(), "in.xml", `<ROOT>
  <PLAYER id="7" firstName="Ada" lastName="Lovelace" nickName="countess"/>
  <PLAYER firstName="Alan" lastName="Turing" nickName="prof"/>
</ROOT>`)

	result, err := s.service.ImportFile(in)
	s.Require().NoError(err)
	s.Len(result.Players(), 2)

	out := filepath.Join(s.T().TempDir(), "out.xml")
	s.Require().NoError(s.service.ExportFile(out, "PLAYERS"))

	other, _ := s.newService()
	reloaded, err := other.ImportFile(out)
	s.Require().NoError(err)

	players := reloaded.Players()
	s.Require().Len(players, 2)
	s.Equal(1, players[0].ID)
	s.Equal(7, players[1].ID)
	s.Empty(players[1].NickName)
}

func (s *ServiceSuite) TestList() {
	s.Require().NoError(s.service.Export(s.ctx, "b", ""))
	s.Require().NoError(s.service.Export(s.ctx, "a", ""))

	names, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, names)
}

type failingStorage struct {
	memory.Storage
}

var errUnavailable = errors.New("storage unavailable")

func (f *failingStorage) GetDocument(ctx context.Context, name string) ([]byte, error) {
	return nil, errUnavailable
}

func (f *failingStorage) SaveDocument(ctx context.Context, name string, data []byte) error {
	return errUnavailable
}

func (s *ServiceSuite) TestStorageErrorsPropagate() {
	reg := registry.New(testutil.NopLogger())
	svc := New(&failingStorage{}, playerxml.New(reg, testutil.NopLogger()), testutil.NopLogger())

	_, err := svc.Import(s.ctx, "league")
	s.ErrorIs(err, errUnavailable)

	err = svc.Export(s.ctx, "league", "")
	s.ErrorIs(err, errUnavailable)
}
