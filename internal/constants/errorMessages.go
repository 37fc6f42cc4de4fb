package constants

const (
	MsgUnauthorized      = "No autorizado"
	MsgProfileNotFound   = "Usuario no registrado en la plataforma"
	MsgNotFound          = "Recurso no encontrado"
	MsgAlreadyRegistered = "Ya estás inscrito en este evento"
	MsgEventNotOpen      = "El evento no está activo"
	MsgEventFull         = "El evento ya alcanzó su cupo máximo"
	MsgNotRegistered     = "No tienes una inscripción activa en este evento"
	MsgNotEventOwner     = "Solo el coordinador del evento o un administrador puede modificarlo"
	MsgStoreFailure      = "Error al consultar la base de datos"
	MsgInvalidPayload    = "Solicitud inválida"
)
