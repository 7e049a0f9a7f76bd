package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownType is returned when an envelope carries a type tag this
// vocabulary does not define
var ErrUnknownType = errors.New("unknown envelope type")

// envelope is the wire framing shared by both directions
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// EncodeMessage wraps a client message in an envelope
func EncodeMessage(msg Message) ([]byte, error) {
	return encode(msg.MessageType(), msg)
}

// EncodeResponse wraps a server response in an envelope
func EncodeResponse(resp Response) ([]byte, error) {
	return encode(resp.ResponseType(), resp)
}

func encode(tag string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", tag, err)
	}

	return json.Marshal(&envelope{Type: tag, Data: data})
}

// DecodeMessage parses an envelope into the client message it carries
func DecodeMessage(raw []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	var msg Message
	switch env.Type {
	case MessageTypeCreateSession:
		msg = &CreateSession{}
	case MessageTypeJoinSession:
		msg = &JoinSession{}
	case MessageTypeStartSession:
		msg = &StartSession{}
	case MessageTypeRevealCharacteristic:
		msg = &RevealCharacteristic{}
	case MessageTypeVote:
		msg = &Vote{}
	case MessageTypeUseAction:
		msg = &UseAction{}
	case MessageTypeLeaveSession:
		msg = &LeaveSession{}
	case MessageTypeKickPlayer:
		msg = &KickPlayer{}
	case MessageTypeSelectOrderNumber:
		msg = &SelectOrderNumber{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}

	if err := decodePayload(env, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// DecodeResponse parses an envelope into the server response it carries
func DecodeResponse(raw []byte) (Response, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	var resp Response
	switch env.Type {
	case ResponseTypeSessionCreated:
		resp = &SessionCreated{}
	case ResponseTypeSessionJoined:
		resp = &SessionJoined{}
	case ResponseTypeSessionState:
		resp = &SessionState{}
	case ResponseTypePlayerJoined:
		resp = &PlayerJoined{}
	case ResponseTypePlayerUpdated:
		resp = &PlayerUpdated{}
	case ResponseTypePlayerLeft:
		resp = &PlayerLeft{}
	case ResponseTypeCharacteristicRevealed:
		resp = &CharacteristicRevealed{}
	case ResponseTypeVoteUpdate:
		resp = &VoteUpdate{}
	case ResponseTypeRoundStarted:
		resp = &RoundStarted{}
	case ResponseTypeRoundEnded:
		resp = &RoundEnded{}
	case ResponseTypeActionUsed:
		resp = &ActionUsed{}
	case ResponseTypeSessionEnded:
		resp = &SessionEnded{}
	case ResponseTypeError:
		resp = &Error{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}

	if err := decodePayload(env, resp); err != nil {
		return nil, err
	}

	return resp, nil
}

func decodePayload(env envelope, into any) error {
	if len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, into); err != nil {
		return fmt.Errorf("unmarshal %s payload: %w", env.Type, err)
	}

	return nil
}
