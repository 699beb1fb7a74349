package gconf

import (
	"reflect"

	"github.com/kittyverse/weft"
	"github.com/kittyverse/weft/errors"
	"github.com/kittyverse/weft/x"
)

// OwnedConfig is a configuration that declares who may change it.
type OwnedConfig interface {
	Configuration
	GetOwner() weft.Address
}

// UpdateConfigurationHandler applies the Patch field of a message to the
// stored configuration. Only the configuration owner can do it.
type UpdateConfigurationHandler struct {
	pkg    string
	config OwnedConfig
	auth   x.Authenticator
}

var _ weft.Handler = UpdateConfigurationHandler{}

// NewUpdateConfigurationHandler returns a handler for configuration updates
// of pkg. config is only used as a loading destination and its type must
// match the type of the message Patch field.
func NewUpdateConfigurationHandler(pkg string, config OwnedConfig, auth x.Authenticator) UpdateConfigurationHandler {
	return UpdateConfigurationHandler{
		pkg:    pkg,
		config: config,
		auth:   auth,
	}
}

func (h UpdateConfigurationHandler) Check(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.CheckResult, error) {
	if err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weft.CheckResult{}, nil
}

func (h UpdateConfigurationHandler) Deliver(ctx weft.Context, db weft.KVStore, tx weft.Tx) (*weft.DeliverResult, error) {
	if err := h.apply(ctx, db, tx); err != nil {
		return nil, err
	}
	ev := weft.NewEvent("configuration_updated", "package", h.pkg)
	return &weft.DeliverResult{Events: []*weft.Event{ev}}, nil
}

func (h UpdateConfigurationHandler) apply(ctx weft.Context, db weft.KVStore, tx weft.Tx) error {
	if err := Load(db, h.pkg, h.config); err != nil {
		return errors.Wrap(err, "load configuration")
	}
	owner := h.config.GetOwner()
	if owner == nil {
		return errors.Wrap(errors.ErrUnauthorized, "configuration has no owner")
	}
	if !h.auth.HasAddress(ctx, owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return err
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	payload, err := patchPayload(msg)
	if err != nil {
		return err
	}
	if err := patch(h.config, payload); err != nil {
		return err
	}
	return Save(db, h.pkg, h.config)
}

// patchPayload returns the value of the Patch field of msg.
func patchPayload(msg weft.Msg) (OwnedConfig, error) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return nil, errors.Wrapf(errors.ErrType, "message %T", msg)
	}
	field := v.Elem().FieldByName("Patch")
	if !field.IsValid() || field.Kind() != reflect.Ptr {
		return nil, errors.Wrapf(errors.ErrType, "message %T has no Patch field", msg)
	}
	if field.IsNil() {
		return nil, errors.Wrap(errors.ErrEmpty, "patch")
	}
	payload, ok := field.Interface().(OwnedConfig)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "patch %s", field.Type())
	}
	return payload, nil
}

// patch copies every non zero field of payload into config.
func patch(config, payload OwnedConfig) error {
	if reflect.TypeOf(config) != reflect.TypeOf(payload) {
		return errors.Wrapf(errors.ErrType, "cannot patch %T with %T", config, payload)
	}
	dst := reflect.ValueOf(config).Elem()
	src := reflect.ValueOf(payload).Elem()
	for i := 0; i < src.NumField(); i++ {
		f := src.Field(i)
		if reflect.DeepEqual(f.Interface(), reflect.Zero(f.Type()).Interface()) {
			continue
		}
		dst.Field(i).Set(f)
	}
	return nil
}
