package handler

type ContextKey string

var CurrentUserCtx ContextKey = "currentUser"
