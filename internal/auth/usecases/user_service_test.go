package usecases_test

import (
	"context"

	"atlas-cms/internal/auth/domain"
	"atlas-cms/internal/auth/security"
	"atlas-cms/internal/auth/usecases"
	mockusecases "atlas-cms/test/unit/doubles/auth/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("UserService", func() {
	var (
		ctrl     *gomock.Controller
		mockRepo *mockusecases.MockUserRepository
		service  *usecases.SimpleUserService
		ctx      context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockRepo = mockusecases.NewMockUserRepository(ctrl)
		service = usecases.NewUserService(mockRepo)
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("RegisterFirstAdmin", func() {
		ginkgo.It("creates an admin on a fresh instance", func() {
			mockRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			user, err := service.RegisterFirstAdmin(ctx, "ada@example.com", "Ada", "password123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(user.Role).To(gomega.Equal(domain.RoleAdmin))
			gomega.Expect(user.PasswordHash).NotTo(gomega.BeEmpty())
			gomega.Expect(user.PasswordHash).NotTo(gomega.Equal("password123"))
		})

		ginkgo.It("closes once any user exists", func() {
			mockRepo.EXPECT().Count(gomock.Any()).Return(int64(1), nil)

			_, err := service.RegisterFirstAdmin(ctx, "eve@example.com", "Eve", "password123")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrRegistrationClosed))
		})

		ginkgo.It("rejects weak passwords", func() {
			mockRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)

			_, err := service.RegisterFirstAdmin(ctx, "ada@example.com", "Ada", "short")
			gomega.Expect(err).To(gomega.MatchError(security.ErrPasswordTooShort))
		})
	})

	ginkgo.Context("CreateUser", func() {
		ginkgo.It("creates an editor", func() {
			mockRepo.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(domain.User{}, usecases.ErrUserNotFound)
			mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			user, err := service.CreateUser(ctx, "bob@example.com", "Bob", "password123", domain.RoleEditor)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(user.Role).To(gomega.Equal(domain.RoleEditor))
		})

		ginkgo.It("rejects duplicated emails", func() {
			existing, err := domain.NewUserBuilder().WithEmail("bob@example.com").Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			mockRepo.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").Return(existing, nil)

			_, err = service.CreateUser(ctx, "bob@example.com", "Bob", "password123", domain.RoleEditor)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrUserDuplicated))
		})
	})

	ginkgo.Context("Authenticate", func() {
		var storedUser domain.User

		ginkgo.BeforeEach(func() {
			hash, err := security.HashPassword("password123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			storedUser, err = domain.NewUserBuilder().
				WithEmail("ada@example.com").
				WithPasswordHash(hash).
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("accepts the right password", func() {
			mockRepo.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(storedUser, nil)

			user, err := service.Authenticate(ctx, "ada@example.com", "password123")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(user.ID).To(gomega.Equal(storedUser.ID))
		})

		ginkgo.It("rejects a wrong password with the same error as an unknown email", func() {
			mockRepo.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(storedUser, nil)
			_, wrongPassword := service.Authenticate(ctx, "ada@example.com", "nope nope nope")

			mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(domain.User{}, usecases.ErrUserNotFound)
			_, unknownEmail := service.Authenticate(ctx, "ghost@example.com", "password123")

			gomega.Expect(wrongPassword).To(gomega.MatchError(usecases.ErrInvalidCredentials))
			gomega.Expect(unknownEmail).To(gomega.MatchError(usecases.ErrInvalidCredentials))
		})
	})

	ginkgo.Context("DeleteUser", func() {
		ginkgo.It("deletes an existing user", func() {
			user, err := domain.NewUserBuilder().WithEmail("bob@example.com").Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			mockRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)
			mockRepo.EXPECT().Delete(gomock.Any(), user.ID).Return(nil)

			gomega.Expect(service.DeleteUser(ctx, user.ID)).To(gomega.Succeed())
		})

		ginkgo.It("propagates not found", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), domain.ID("missing")).Return(domain.User{}, usecases.ErrUserNotFound)

			err := service.DeleteUser(ctx, domain.ID("missing"))
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrUserNotFound))
		})
	})
})
