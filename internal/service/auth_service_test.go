package service

import (
	"context"
	"testing"

	"virtual-classroom-be/internal/dto"
	"virtual-classroom-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(role string) *dto.RegisterRequest {
	req := &dto.RegisterRequest{
		Username: "amina",
		Email:    "amina@example.com",
		Password: "password123",
		Role:     role,
	}
	if role == "student" {
		req.ClassName = "SS1A"
	}
	return req
}

func TestRegisterStudent(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAuthService(factory, 24)

	resp, err := svc.Register(context.Background(), registerRequest("student"))
	require.NoError(t, err)
	assert.Equal(t, "amina", resp.Username)
	assert.Equal(t, "student", resp.Role)

	user, err := factory.uow.users.FindOne(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "SS1A", user.ClassName)
	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegisterStudentRequiresClassName(t *testing.T) {
	svc := NewAuthService(newFakeFactory(), 24)

	req := registerRequest("student")
	req.ClassName = ""
	_, err := svc.Register(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAuthService(factory, 24)

	_, err := svc.Register(context.Background(), registerRequest("student"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest("student"))
	assert.True(t, apperror.IsValidation(err))
}

func TestRegisterTeacherConsumesStaffId(t *testing.T) {
	factory := newFakeFactory()
	staffId := factory.uow.users.addStaffId("STF001")
	svc := NewAuthService(factory, 24)

	req := registerRequest("teacher")
	req.Username = "mr_okafor"
	req.StaffId = "STF001"

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, staffId.IsUsed)

	// The consumed id cannot register a second teacher.
	second := registerRequest("teacher")
	second.Username = "impostor"
	second.StaffId = "STF001"
	_, err = svc.Register(context.Background(), second)
	assert.True(t, apperror.IsValidation(err))
}

func TestRegisterTeacherRejectsUnknownStaffId(t *testing.T) {
	svc := NewAuthService(newFakeFactory(), 24)

	req := registerRequest("teacher")
	req.StaffId = "STF999"
	_, err := svc.Register(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))
}

func TestRegisterTeacherRequiresStaffId(t *testing.T) {
	svc := NewAuthService(newFakeFactory(), 24)

	req := registerRequest("teacher")
	req.StaffId = ""
	_, err := svc.Register(context.Background(), req)
	assert.True(t, apperror.IsValidation(err))
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	factory := newFakeFactory()
	svc := NewAuthService(factory, 24)

	_, err := svc.Register(context.Background(), registerRequest("student"))
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "amina",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "amina", resp.User.Username)
	assert.Equal(t, "SS1A", resp.User.ClassName)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	factory := newFakeFactory()
	svc := NewAuthService(factory, 24)

	_, err := svc.Register(context.Background(), registerRequest("student"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "amina",
		Password: "wrong",
	})
	assert.True(t, apperror.IsAuthorization(err))

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})
	assert.True(t, apperror.IsAuthorization(err))
}

func TestSubjectsFollowsClassTrack(t *testing.T) {
	svc := NewAuthService(newFakeFactory(), 24)

	science := svc.Subjects(studentIdentity("amina", "SS1A"))
	assert.Contains(t, science.Subjects, "Physics")
	assert.NotContains(t, science.Subjects, "Literature")

	arts := svc.Subjects(studentIdentity("chiamaka", "SS1B"))
	assert.Contains(t, arts.Subjects, "Literature")
	assert.NotContains(t, arts.Subjects, "Physics")

	assert.Contains(t, science.Subjects, "Mathematics")
	assert.Contains(t, arts.Subjects, "Mathematics")
}
