package usecase_test

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epc-inventory-api/internal/application/dto"
	"github.com/jhoicas/epc-inventory-api/internal/application/usecase"
	"github.com/jhoicas/epc-inventory-api/internal/domain"
	"github.com/jhoicas/epc-inventory-api/internal/domain/entity"
)

func newUserUC(db *memDB) *usecase.UserUseCase {
	db.roles = append(db.roles, &entity.Role{ID: "r1", CompanyID: companyID, Name: "clerk"})
	return usecase.NewUserUseCase(memTx{db}, &memUsers{db}, &memRoles{db}, scopeOf(db), csvRecords{}, nop)
}

func userReq(path, id string) dto.CreateUserRequest {
	return dto.CreateUserRequest{Email: "op@acme.co", Password: "pw", BranchPath: path, BranchID: id, Role: "clerk"}
}

func TestUserUseCase_Create(t *testing.T) {
	tests := []struct {
		name string
		p    bool // true = usuario de empresa
		in   dto.CreateUserRequest
		kind domain.Kind
	}{
		{"bodega propia", false, userReq("Warehouse", whA), ""},
		{"empresa por usuario de empresa", true, userReq("Company", companyID), ""},
		{"bodega ajena", false, userReq("Warehouse", whB), domain.KindForbidden},
		{"empresa por usuario de bodega", false, userReq("Company", companyID), domain.KindForbidden},
		{"bodega inexistente", true, userReq("Warehouse", "ghost"), domain.KindNotFound},
		{"otra empresa", true, userReq("Company", otherCo), domain.KindNotFound},
		{"rama inválida", true, userReq("Zone", zoneA), domain.KindValidation},
		{"rol inexistente", true, dto.CreateUserRequest{Email: "x@acme.co", Password: "pw", BranchPath: "Company", BranchID: companyID, Role: "ghost"}, domain.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := seeded()
			uc := newUserUC(db)
			p := whAUser
			if tt.p {
				p = companyUser
			}
			out, err := uc.Create(context.Background(), p, tt.in)
			if tt.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.in.BranchPath, out.BranchPath)
				assert.Equal(t, tt.in.BranchID, out.BranchID)
				require.Len(t, db.users, 1)
				assert.NotEqual(t, "pw", db.users[0].PasswordHash)
				return
			}
			assert.Equal(t, tt.kind, domain.KindOf(err))
			assert.Empty(t, db.users)
		})
	}
}

func TestUserUseCase_DuplicateEmail(t *testing.T) {
	db := seeded()
	uc := newUserUC(db)
	_, err := uc.Create(context.Background(), companyUser, userReq("Warehouse", whA))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), companyUser, userReq("Warehouse", whB))
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestUserUseCase_ListAndGet(t *testing.T) {
	db := seeded()
	db.users = []*entity.User{
		{ID: "a", CompanyID: companyID, Role: "clerk", Branch: entity.WarehouseBranch(whA)},
		{ID: "b", CompanyID: companyID, Role: "clerk", Branch: entity.WarehouseBranch(whB)},
		{ID: "c", CompanyID: companyID, Role: entity.RoleAdmin, Branch: entity.CompanyBranch(companyID)},
		{ID: "d", CompanyID: otherCo, Role: "clerk", Branch: entity.CompanyBranch(otherCo)},
	}
	uc := newUserUC(db)
	ctx := context.Background()

	all, err := uc.List(ctx, companyUser, dto.UserListQuery{}, allPages)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	clerks, err := uc.List(ctx, companyUser, dto.UserListQuery{Role: "clerk"}, allPages)
	require.NoError(t, err)
	assert.Len(t, clerks, 2)

	own, err := uc.List(ctx, whAUser, dto.UserListQuery{BranchPath: "Warehouse", BranchID: whB}, allPages)
	require.NoError(t, err)
	require.Len(t, own, 1, "el filtro de un usuario de bodega se fuerza a su bodega")
	assert.Equal(t, "a", own[0].ID)

	_, err = uc.Get(ctx, whAUser, "b")
	assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	_, err = uc.Get(ctx, companyUser, "d")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	got, err := uc.Get(ctx, companyUser, "b")
	require.NoError(t, err)
	assert.Equal(t, whB, got.BranchID)
}

func TestUserUseCase_Update(t *testing.T) {
	db := seeded()
	db.users = []*entity.User{
		{ID: "a", CompanyID: companyID, Email: "a@acme.co", Role: "clerk", Branch: entity.WarehouseBranch(whA)},
		{ID: "b", CompanyID: companyID, Email: "b@acme.co", Role: "clerk", Branch: entity.WarehouseBranch(whB)},
	}
	uc := newUserUC(db)
	ctx := context.Background()

	out, err := uc.Update(ctx, companyUser, "a", dto.UpdateUserRequest{
		Phone: strPtr("555"), BranchPath: strPtr("Warehouse"), BranchID: strPtr(whB),
	})
	require.NoError(t, err)
	assert.Equal(t, whB, out.BranchID)
	assert.Equal(t, "555", db.users[0].Phone)
	assert.Equal(t, "a@acme.co", db.users[0].Email, "los campos ausentes no cambian")

	tests := []struct {
		name string
		p    bool
		id   string
		in   dto.UpdateUserRequest
		kind domain.Kind
	}{
		{"solo branch_path", true, "b", dto.UpdateUserRequest{BranchPath: strPtr("Company")}, domain.KindValidation},
		{"email vacío", true, "b", dto.UpdateUserRequest{Email: strPtr("  ")}, domain.KindValidation},
		{"email tomado", true, "b", dto.UpdateUserRequest{Email: strPtr("A@acme.co")}, domain.KindConflict},
		{"rol inexistente", true, "b", dto.UpdateUserRequest{Role: strPtr("ghost")}, domain.KindNotFound},
		{"usuario fuera del alcance", false, "b", dto.UpdateUserRequest{Phone: strPtr("1")}, domain.KindForbidden},
		{"mover a bodega ajena", false, "c", dto.UpdateUserRequest{BranchPath: strPtr("Warehouse"), BranchID: strPtr(whB)}, domain.KindForbidden},
		{"inexistente", true, "ghost", dto.UpdateUserRequest{}, domain.KindNotFound},
	}
	db.users = append(db.users, &entity.User{ID: "c", CompanyID: companyID, Email: "c@acme.co", Role: "clerk", Branch: entity.WarehouseBranch(whA)})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := whAUser
			if tt.p {
				p = companyUser
			}
			_, err := uc.Update(ctx, p, tt.id, tt.in)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
	assert.Equal(t, "b@acme.co", db.users[1].Email)
	assert.Equal(t, whA, db.users[2].Branch.ID())
}

func TestUserUseCase_RegisterJSONGeneratesMissingPasswords(t *testing.T) {
	db := seeded()
	uc := newUserUC(db)

	given := userReq("Warehouse", whA)
	missing := userReq("Warehouse", whA)
	missing.Email, missing.Password = "nuevo@acme.co", ""

	out, err := uc.RegisterJSON(context.Background(), whAUser, dto.RegisterUsersRequest{Users: []dto.CreateUserRequest{given, missing}})
	require.NoError(t, err)
	require.Len(t, out.Data, 2)
	assert.Empty(t, out.Data[0].Password, "una contraseña enviada no se devuelve")
	generated := out.Data[1].Password
	require.Len(t, generated, 12)
	require.Len(t, db.users, 2)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(db.users[1].PasswordHash), []byte(generated)))
}

func TestUserUseCase_RegisterIsAllOrNothing(t *testing.T) {
	ctx := context.Background()

	t.Run("fila inválida", func(t *testing.T) {
		db := seeded()
		uc := newUserUC(db)
		bad := userReq("Warehouse", whB)
		bad.Email = "otro@acme.co"
		_, err := uc.RegisterJSON(ctx, whAUser, dto.RegisterUsersRequest{Users: []dto.CreateUserRequest{userReq("Warehouse", whA), bad}})
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.KindForbidden, de.Kind)
		assert.Equal(t, "users[1]", de.Field)
		assert.Empty(t, db.users)
	})

	t.Run("email repetido en la petición", func(t *testing.T) {
		db := seeded()
		uc := newUserUC(db)
		_, err := uc.RegisterJSON(ctx, companyUser, dto.RegisterUsersRequest{Users: []dto.CreateUserRequest{userReq("Warehouse", whA), userReq("Warehouse", whB)}})
		var de *domain.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "users[1].email", de.Field)
		assert.Empty(t, db.users)
	})

	t.Run("email ya registrado", func(t *testing.T) {
		db := seeded()
		db.users = []*entity.User{{ID: "x", CompanyID: companyID, Email: "viejo@acme.co", Branch: entity.CompanyBranch(companyID)}}
		uc := newUserUC(db)
		old := userReq("Warehouse", whA)
		old.Email = "viejo@acme.co"
		_, err := uc.RegisterJSON(ctx, companyUser, dto.RegisterUsersRequest{Users: []dto.CreateUserRequest{userReq("Warehouse", whA), old}})
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
		assert.Len(t, db.users, 1, "la transacción revierte la primera fila")
	})

	t.Run("sin filas", func(t *testing.T) {
		_, err := newUserUC(seeded()).RegisterJSON(ctx, companyUser, dto.RegisterUsersRequest{})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}

func TestUserUseCase_RegisterCSVAndFile(t *testing.T) {
	ctx := context.Background()
	text := "email,phone,branch_path,branch_id,role\nana@acme.co,300,Warehouse,wA,clerk\nluis@acme.co,,Company,c1,clerk"

	db := seeded()
	uc := newUserUC(db)
	out, err := uc.RegisterCSV(ctx, companyUser, dto.RegisterUsersCSVRequest{Text: text})
	require.NoError(t, err)
	require.Len(t, out.Data, 2)
	assert.Equal(t, "Company", out.Data[1].BranchPath)
	assert.NotEmpty(t, out.Data[0].Password)

	_, err = uc.RegisterCSV(ctx, companyUser, dto.RegisterUsersCSVRequest{})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	db = seeded()
	uc = newUserUC(db)
	lines := "email,branch_path,branch_id,role\npia@acme.co,Warehouse,wA,clerk"
	_, err = uc.RegisterFile(ctx, whAUser, upload(lines))
	require.NoError(t, err)
	assert.Len(t, db.users, 1)

	_, err = uc.RegisterFile(ctx, whAUser, nil)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
