// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"ludamus.io/enrolld/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEventID, v))
}

// HostID applies equality check predicate on the "host_id" field. It's identical to HostIDEQ.
func HostID(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldHostID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSlug, v))
}

// ParticipantsLimit applies equality check predicate on the "participants_limit" field. It's identical to ParticipantsLimitEQ.
func ParticipantsLimit(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldParticipantsLimit, v))
}

// MinAge applies equality check predicate on the "min_age" field. It's identical to MinAgeEQ.
func MinAge(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMinAge, v))
}

// Requirements applies equality check predicate on the "requirements" field. It's identical to RequirementsEQ.
func Requirements(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRequirements, v))
}

// PresenterName applies equality check predicate on the "presenter_name" field. It's identical to PresenterNameEQ.
func PresenterName(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPresenterName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldUpdatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEventID, vs...))
}

// HostIDEQ applies the EQ predicate on the "host_id" field.
func HostIDEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldHostID, v))
}

// HostIDNEQ applies the NEQ predicate on the "host_id" field.
func HostIDNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldHostID, v))
}

// HostIDIn applies the In predicate on the "host_id" field.
func HostIDIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldHostID, vs...))
}

// HostIDNotIn applies the NotIn predicate on the "host_id" field.
func HostIDNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldHostID, vs...))
}

// HostIDIsNil applies the IsNil predicate on the "host_id" field.
func HostIDIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldHostID))
}

// HostIDNotNil applies the NotNil predicate on the "host_id" field.
func HostIDNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldHostID))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldTitle, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSlug, v))
}

// ParticipantsLimitEQ applies the EQ predicate on the "participants_limit" field.
func ParticipantsLimitEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldParticipantsLimit, v))
}

// ParticipantsLimitNEQ applies the NEQ predicate on the "participants_limit" field.
func ParticipantsLimitNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldParticipantsLimit, v))
}

// ParticipantsLimitIn applies the In predicate on the "participants_limit" field.
func ParticipantsLimitIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldParticipantsLimit, vs...))
}

// ParticipantsLimitNotIn applies the NotIn predicate on the "participants_limit" field.
func ParticipantsLimitNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldParticipantsLimit, vs...))
}

// ParticipantsLimitGT applies the GT predicate on the "participants_limit" field.
func ParticipantsLimitGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldParticipantsLimit, v))
}

// ParticipantsLimitGTE applies the GTE predicate on the "participants_limit" field.
func ParticipantsLimitGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldParticipantsLimit, v))
}

// ParticipantsLimitLT applies the LT predicate on the "participants_limit" field.
func ParticipantsLimitLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldParticipantsLimit, v))
}

// ParticipantsLimitLTE applies the LTE predicate on the "participants_limit" field.
func ParticipantsLimitLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldParticipantsLimit, v))
}

// MinAgeEQ applies the EQ predicate on the "min_age" field.
func MinAgeEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldMinAge, v))
}

// MinAgeNEQ applies the NEQ predicate on the "min_age" field.
func MinAgeNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldMinAge, v))
}

// MinAgeIn applies the In predicate on the "min_age" field.
func MinAgeIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldMinAge, vs...))
}

// MinAgeNotIn applies the NotIn predicate on the "min_age" field.
func MinAgeNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldMinAge, vs...))
}

// MinAgeGT applies the GT predicate on the "min_age" field.
func MinAgeGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldMinAge, v))
}

// MinAgeGTE applies the GTE predicate on the "min_age" field.
func MinAgeGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldMinAge, v))
}

// MinAgeLT applies the LT predicate on the "min_age" field.
func MinAgeLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldMinAge, v))
}

// MinAgeLTE applies the LTE predicate on the "min_age" field.
func MinAgeLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldMinAge, v))
}

// RequirementsEQ applies the EQ predicate on the "requirements" field.
func RequirementsEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldRequirements, v))
}

// RequirementsNEQ applies the NEQ predicate on the "requirements" field.
func RequirementsNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldRequirements, v))
}

// RequirementsIn applies the In predicate on the "requirements" field.
func RequirementsIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldRequirements, vs...))
}

// RequirementsNotIn applies the NotIn predicate on the "requirements" field.
func RequirementsNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldRequirements, vs...))
}

// RequirementsGT applies the GT predicate on the "requirements" field.
func RequirementsGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldRequirements, v))
}

// RequirementsGTE applies the GTE predicate on the "requirements" field.
func RequirementsGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldRequirements, v))
}

// RequirementsLT applies the LT predicate on the "requirements" field.
func RequirementsLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldRequirements, v))
}

// RequirementsLTE applies the LTE predicate on the "requirements" field.
func RequirementsLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldRequirements, v))
}

// RequirementsContains applies the Contains predicate on the "requirements" field.
func RequirementsContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldRequirements, v))
}

// RequirementsHasPrefix applies the HasPrefix predicate on the "requirements" field.
func RequirementsHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldRequirements, v))
}

// RequirementsHasSuffix applies the HasSuffix predicate on the "requirements" field.
func RequirementsHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldRequirements, v))
}

// RequirementsIsNil applies the IsNil predicate on the "requirements" field.
func RequirementsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldRequirements))
}

// RequirementsNotNil applies the NotNil predicate on the "requirements" field.
func RequirementsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldRequirements))
}

// RequirementsEqualFold applies the EqualFold predicate on the "requirements" field.
func RequirementsEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldRequirements, v))
}

// RequirementsContainsFold applies the ContainsFold predicate on the "requirements" field.
func RequirementsContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldRequirements, v))
}

// PresenterNameEQ applies the EQ predicate on the "presenter_name" field.
func PresenterNameEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPresenterName, v))
}

// PresenterNameNEQ applies the NEQ predicate on the "presenter_name" field.
func PresenterNameNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPresenterName, v))
}

// PresenterNameIn applies the In predicate on the "presenter_name" field.
func PresenterNameIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPresenterName, vs...))
}

// PresenterNameNotIn applies the NotIn predicate on the "presenter_name" field.
func PresenterNameNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPresenterName, vs...))
}

// PresenterNameGT applies the GT predicate on the "presenter_name" field.
func PresenterNameGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPresenterName, v))
}

// PresenterNameGTE applies the GTE predicate on the "presenter_name" field.
func PresenterNameGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPresenterName, v))
}

// PresenterNameLT applies the LT predicate on the "presenter_name" field.
func PresenterNameLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPresenterName, v))
}

// PresenterNameLTE applies the LTE predicate on the "presenter_name" field.
func PresenterNameLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPresenterName, v))
}

// PresenterNameContains applies the Contains predicate on the "presenter_name" field.
func PresenterNameContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPresenterName, v))
}

// PresenterNameHasPrefix applies the HasPrefix predicate on the "presenter_name" field.
func PresenterNameHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPresenterName, v))
}

// PresenterNameHasSuffix applies the HasSuffix predicate on the "presenter_name" field.
func PresenterNameHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPresenterName, v))
}

// PresenterNameIsNil applies the IsNil predicate on the "presenter_name" field.
func PresenterNameIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPresenterName))
}

// PresenterNameNotNil applies the NotNil predicate on the "presenter_name" field.
func PresenterNameNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPresenterName))
}

// PresenterNameEqualFold applies the EqualFold predicate on the "presenter_name" field.
func PresenterNameEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPresenterName, v))
}

// PresenterNameContainsFold applies the ContainsFold predicate on the "presenter_name" field.
func PresenterNameContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPresenterName, v))
}

// HasEvent applies the HasEdge predicate on the "event" edge.
func HasEvent() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EventTable, EventColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventWith applies the HasEdge predicate on the "event" edge with a given conditions (other predicates).
func HasEventWith(preds ...predicate.Event) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newEventStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHost applies the HasEdge predicate on the "host" edge.
func HasHost() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, HostTable, HostColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHostWith applies the HasEdge predicate on the "host" edge with a given conditions (other predicates).
func HasHostWith(preds ...predicate.User) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newHostStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgendaItem applies the HasEdge predicate on the "agenda_item" edge.
func HasAgendaItem() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, AgendaItemTable, AgendaItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgendaItemWith applies the HasEdge predicate on the "agenda_item" edge with a given conditions (other predicates).
func HasAgendaItemWith(preds ...predicate.AgendaItem) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newAgendaItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipations applies the HasEdge predicate on the "participations" edge.
func HasParticipations() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipationsTable, ParticipationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipationsWith applies the HasEdge predicate on the "participations" edge with a given conditions (other predicates).
func HasParticipationsWith(preds ...predicate.SessionParticipation) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newParticipationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
