package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/api/dto"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/adapter/repository"
	userdomain "github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/auth"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/logger"
	"github.com/tecnologiawebnetsystem/pet-shop-back/pkg/mailer"
)

// Tokens de redefinição valem por uma hora e são de uso único
const resetTokenTTL = time.Hour

// AuthController gerencia autenticação e recuperação de senha
type AuthController struct {
	userRepo    userdomain.Repository
	resetRepo   userdomain.ResetTokenRepository
	jwtService  *auth.JWTService
	mailer      mailer.Mailer
	frontendURL string
	logger      logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepo userdomain.Repository, resetRepo userdomain.ResetTokenRepository, jwtService *auth.JWTService, m mailer.Mailer, frontendURL string, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		jwtService:  jwtService,
		mailer:      m,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Login autentica um usuário
// @Summary Login
// @Description Autentica o usuário e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciais body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
			return
		}
		c.logger.Error("Erro ao buscar usuário no login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar", err.Error()))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
		return
	}

	if !u.IsActive() {
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Usuário inativo", ""))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("Erro ao gerar token JWT", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	if err := c.userRepo.UpdateLastAccess(ctx, u.ID); err != nil {
		c.logger.Warn("Erro ao registrar último acesso", "user_id", u.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(u),
	})
}

// ForgotPassword inicia a recuperação de senha
// @Summary Recuperar senha
// @Description Envia por e-mail um link de redefinição de senha
// @Tags auth
// @Accept json
// @Produce json
// @Param email body dto.ForgotPasswordRequest true "E-mail cadastrado"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /auth/forgot-password [post]
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar usuário para recuperação de senha", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao recuperar senha", err.Error()))
		return
	}

	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		c.logger.Error("Erro ao gerar token de redefinição", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	token := &userdomain.ResetToken{
		ID:        uuid.New().String(),
		UserID:    u.ID,
		Token:     hex.EncodeToString(raw),
		ExpiresAt: time.Now().Add(resetTokenTTL),
		CreatedAt: time.Now(),
	}

	if err := c.resetRepo.Create(ctx, token); err != nil {
		c.logger.Error("Erro ao salvar token de redefinição", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao recuperar senha", err.Error()))
		return
	}

	link := fmt.Sprintf("%s/redefinir-senha?token=%s", c.frontendURL, token.Token)
	body := fmt.Sprintf(`<p>Olá, %s!</p>
<p>Recebemos um pedido de redefinição de senha para a sua conta.</p>
<p><a href="%s">Clique aqui para redefinir a sua senha</a>. O link vale por uma hora.</p>
<p>Se você não pediu a redefinição, ignore este e-mail.</p>`, u.Name, link)

	if err := c.mailer.Send(u.Email, "Redefinição de senha", body); err != nil {
		c.logger.Error("Erro ao enviar e-mail de recuperação", "to", u.Email, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao enviar e-mail de recuperação", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("E-mail de recuperação enviado", nil))
}

// ResetPassword redefine a senha a partir de um token válido
// @Summary Redefinir senha
// @Description Redefine a senha do usuário usando o token recebido por e-mail
// @Tags auth
// @Accept json
// @Produce json
// @Param dados body dto.ResetPasswordRequest true "Token e nova senha"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	token, err := c.resetRepo.FindValid(ctx, req.Token)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Token inválido ou expirado", ""))
			return
		}
		c.logger.Error("Erro ao validar token de redefinição", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao redefinir senha", err.Error()))
		return
	}

	u, err := c.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		c.logger.Error("Erro ao buscar usuário do token", "user_id", token.UserID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao redefinir senha", err.Error()))
		return
	}

	if err := u.SetPassword(req.NewPassword); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Senha inválida", err.Error()))
		return
	}

	if err := c.userRepo.UpdatePassword(ctx, u.ID, u.Password); err != nil {
		c.logger.Error("Erro ao atualizar senha", "user_id", u.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao redefinir senha", err.Error()))
		return
	}

	if err := c.resetRepo.MarkUsed(ctx, token.ID); err != nil {
		c.logger.Error("Erro ao invalidar token de redefinição", "token_id", token.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Senha redefinida com sucesso", nil))
}
