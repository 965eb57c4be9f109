package entity

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUserNotFound       = errors.New("user not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrDuplicateCNPJ      = errors.New("cnpj already exists")
	ErrWrongPassword      = errors.New("current password does not match")
	ErrSelfDelete         = errors.New("cannot delete own account")

	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrTokenNotValidYet = errors.New("token not valid yet")
	ErrTokenInvalid     = errors.New("token invalid")

	ErrUnknownProvider    = errors.New("unknown oauth provider")
	ErrInvalidOAuthState  = errors.New("invalid oauth state")
	ErrOAuthProvider      = errors.New("oauth provider error")
	ErrOAuthEmailMissing  = errors.New("oauth profile has no email")
	ErrOAuthProviderLimit = errors.New("oauth provider rate limit")
)

const (
	ErrMsgInternal           = "Erro interno do servidor"
	ErrMsgBadRequest         = "Requisição inválida"
	ErrMsgValidation         = "Dados inválidos"
	ErrMsgUnauthorized       = "Não autorizado"
	ErrMsgInvalidCredentials = "Credenciais inválidas"
	ErrMsgForbidden          = "Acesso negado"
	ErrMsgAdminOnly          = "Acesso restrito a administradores"
	ErrMsgUserNotFound       = "Usuário não encontrado"
	ErrMsgClientNotFound     = "Cliente não encontrado"
	ErrMsgEmailTaken         = "Email já está em uso"
	ErrMsgCNPJTaken          = "CNPJ já está cadastrado"
	ErrMsgWrongPassword      = "Senha atual incorreta"
	ErrMsgSelfDelete         = "Você não pode deletar sua própria conta"
	ErrMsgNotFound           = "Recurso não encontrado"

	ErrMsgTokenExpired     = "Token expirado"
	ErrMsgTokenMalformed   = "Token malformado"
	ErrMsgTokenNotValidYet = "Token não ativo ainda"
	ErrMsgTokenInvalid     = "Token inválido ou expirado"

	ErrMsgUnknownProvider = "Provedor de autenticação desconhecido"
	ErrMsgOAuthState      = "Sessão de autenticação inválida ou expirada"
	ErrMsgOAuthFailed     = "Falha na autenticação com o provedor"
)
