package handler

import (
	"errors"
	"net/http"
	"time"

	"gestaocon/internal/app/ds"
	"gestaocon/internal/app/dto"
	"gestaocon/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const jwtIssuer = "gestaocon"

// RegisterUser cria um usuário com senha bcrypt e devolve o token de acesso
func (h *Handler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := h.Repository.UserExistsByLogin(request.Login)
	if err != nil {
		h.tratarErro(ctx, err, "verificar login")
		return
	}
	if exists {
		h.errorResponse(ctx, http.StatusBadRequest, "já existe usuário com este login")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		h.tratarErro(ctx, err, "registrar usuário")
		return
	}

	userRole := int(role.Operador)
	if request.Role != nil {
		userRole = *request.Role
	}

	user, err := h.Repository.CreateUser(request.Login, string(hash), request.Nome, userRole)
	if err != nil {
		h.tratarErro(ctx, err, "registrar usuário")
		return
	}

	accessToken, err := h.gerarToken(user)
	if err != nil {
		h.tratarErro(ctx, err, "gerar token")
		return
	}

	h.successResponse(ctx, http.StatusCreated, "usuário registrado", gin.H{
		"user": dto.ProfileResponse{
			ID:    user.ID,
			Login: user.Login,
			Nome:  user.Nome,
			Email: user.Email,
			Role:  role.Role(user.Role).String(),
		},
		"access_token": accessToken,
		"token_type":   "Bearer",
		"expires_in":   int(h.Config.JWT.ExpiresIn.Seconds()),
	})
}

// LoginUser autentica por login/senha e emite o JWT
func (h *Handler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorResponse(ctx, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Repository.GetUserByLogin(request.Login)
	if err != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, "login ou senha inválidos")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, "login ou senha inválidos")
		return
	}

	accessToken, err := h.gerarToken(user)
	if err != nil {
		h.tratarErro(ctx, err, "gerar token")
		return
	}

	h.successResponse(ctx, http.StatusOK, "usuário autenticado", dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.Config.JWT.ExpiresIn.Seconds()),
		Role:        role.Role(user.Role).String(),
		Nome:        user.Nome,
	})
}

// LogoutUser grava o token na blacklist do Redis até expirar
func (h *Handler) LogoutUser(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorResponse(ctx, http.StatusUnauthorized, "authorization header ausente")
		return
	}
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		h.errorResponse(ctx, http.StatusUnauthorized, "token inválido")
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorResponse(ctx, http.StatusUnauthorized, "token inválido")
		return
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			logrus.WithError(err).Error("erro ao registrar logout")
			h.errorResponse(ctx, http.StatusInternalServerError, "erro ao encerrar sessão")
			return
		}
	}

	h.successResponse(ctx, http.StatusOK, "sessão encerrada", nil)
}

// GetUserProfile devolve os dados do usuário autenticado
func (h *Handler) GetUserProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorResponse(ctx, http.StatusUnauthorized, "usuário não autenticado")
		return
	}

	user, err := h.Repository.GetUserByID(userID.(uint))
	if err != nil {
		h.tratarErro(ctx, err, "buscar perfil")
		return
	}

	h.successResponse(ctx, http.StatusOK, "", dto.ProfileResponse{
		ID:    user.ID,
		Login: user.Login,
		Nome:  user.Nome,
		Email: user.Email,
		Role:  role.Role(user.Role).String(),
	})
}

func (h *Handler) gerarToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    jwtIssuer,
		},
		UserID: user.ID,
		Role:   role.Role(user.Role),
	})

	signed, err := token.SignedString([]byte(h.Config.JWT.Token))
	if err != nil {
		return "", errors.New("falha ao assinar token: " + err.Error())
	}
	return signed, nil
}
