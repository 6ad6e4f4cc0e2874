package console

import "github.com/KromaEnergia/loja-cli/internal/utils"

type Command int

const (
	CommandUnknown Command = iota
	CommandList
	CommandCreate
	CommandRead
	CommandUpdate
	CommandDelete
	CommandDeal
	CommandExit
)

var commandNames = map[Command]string{
	CommandUnknown: "unknown",
	CommandList:    "list",
	CommandCreate:  "create",
	CommandRead:    "read",
	CommandUpdate:  "update",
	CommandDelete:  "delete",
	CommandDeal:    "deal",
	CommandExit:    "exit",
}

func (c Command) String() string { return commandNames[c] }

func ParseCommand(input string) Command {
	switch utils.NormalizeInput(input) {
	case "l":
		return CommandList
	case "c":
		return CommandCreate
	case "r":
		return CommandRead
	case "u":
		return CommandUpdate
	case "d":
		return CommandDelete
	case "deal":
		return CommandDeal
	case "e":
		return CommandExit
	default:
		return CommandUnknown
	}
}

type Entity int

const (
	EntityUnknown Entity = iota
	EntityProduct
	EntityCustomer
	EntityDeal
)

var entityNames = map[Entity]string{
	EntityUnknown:  "unknown",
	EntityProduct:  "product",
	EntityCustomer: "customer",
	EntityDeal:     "deal",
}

func (e Entity) String() string { return entityNames[e] }

func ParseEntity(input string) Entity {
	switch utils.NormalizeInput(input) {
	case "p":
		return EntityProduct
	case "c":
		return EntityCustomer
	case "d":
		return EntityDeal
	default:
		return EntityUnknown
	}
}
