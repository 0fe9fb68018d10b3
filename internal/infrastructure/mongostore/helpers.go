package mongostore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jhoicas/marketplace-admin-api/internal/domain"
)

// sortByCreation orden estable de todos los listados.
var sortByCreation = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

// wrapError convierte errores del driver en errores de dominio.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.Duplicate(duplicateField(err.Error()))
	}
	return err
}

// uniqueFields índice (bson) -> campo informado al cliente.
var uniqueFields = []struct{ index, field string }{
	{"acc_name_1", "accName"},
	{"email_1", "email"},
	{"sku_1", "sku"},
	{"upc_1", "upc"},
	{"_id_", "id"},
}

// duplicateField extrae el campo del mensaje "E11000 ... index: email_1 dup key: ...".
func duplicateField(msg string) string {
	for _, u := range uniqueFields {
		if strings.Contains(msg, "index: "+u.index) {
			return u.field
		}
	}
	return "unknown"
}

// findOne busca un documento; si no existe devuelve (nil, nil).
func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D) (*T, error) {
	var result T
	err := col.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return &result, nil
}

// findMany busca varios documentos. Nunca devuelve un slice nil.
func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.D, opts ...options.Lister[options.FindOptions]) ([]*T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, wrapError(err)
	}
	defer cursor.Close(ctx)

	results := []*T{}
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		results = append(results, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// findPage cuenta el total del filtro y devuelve la página pedida.
func findPage[T any](ctx context.Context, col *mongo.Collection, filter bson.D, offset, limit int) ([]*T, int64, error) {
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, wrapError(err)
	}
	opts := options.Find().
		SetSort(sortByCreation).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	items, err := findMany[T](ctx, col, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc interface{}) error {
	_, err := col.InsertOne(ctx, doc)
	return wrapError(err)
}

// replaceByID reemplaza el documento completo.
func replaceByID(ctx context.Context, col *mongo.Collection, id string, doc interface{}) error {
	res, err := col.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc)
	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) error {
	res, err := col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return wrapError(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// updateByID aplica un update arbitrario ($set, $push...) por _id.
func updateByID(ctx context.Context, col *mongo.Collection, id string, update bson.D) error {
	res, err := col.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return wrapError(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// updateFields $set de campos por _id.
func updateFields(ctx context.Context, col *mongo.Collection, id string, fields bson.D) error {
	return updateByID(ctx, col, id, bson.D{{Key: "$set", Value: fields}})
}

// ── Construcción de filtros ─────────────────────────────────────────────────

// eq agrega una condición de igualdad si value no está vacío.
func eq(filter bson.D, key, value string) bson.D {
	if value == "" {
		return filter
	}
	return append(filter, bson.E{Key: key, Value: value})
}

// dateRange agrega {$gte, $lte} si alguno de los extremos viene.
func dateRange(filter bson.D, key string, from, to *time.Time) bson.D {
	cond := bson.D{}
	if from != nil {
		cond = append(cond, bson.E{Key: "$gte", Value: *from})
	}
	if to != nil {
		cond = append(cond, bson.E{Key: "$lte", Value: *to})
	}
	if len(cond) == 0 {
		return filter
	}
	return append(filter, bson.E{Key: key, Value: cond})
}

// minDecimal agrega {$gte: min} sobre un campo Decimal128.
func minDecimal(filter bson.D, key string, min *decimal.Decimal) bson.D {
	if min == nil {
		return filter
	}
	return append(filter, bson.E{Key: key, Value: bson.D{{Key: "$gte", Value: toDec128(*min)}}})
}

// search agrega un $or de regex sin distinguir mayúsculas sobre los campos dados.
// El texto se escapa: es búsqueda de subcadena, no una expresión regular del cliente.
func search(filter bson.D, text string, fields ...string) bson.D {
	if text == "" {
		return filter
	}
	pattern := regexp.QuoteMeta(text)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.D{{Key: f, Value: bson.D{{Key: "$regex", Value: pattern}, {Key: "$options", Value: "i"}}}})
	}
	return append(filter, bson.E{Key: "$or", Value: or})
}

// ── Conversión de tipos ─────────────────────────────────────────────────────

func toDec128(d decimal.Decimal) bson.Decimal128 {
	v, err := bson.ParseDecimal128(d.String())
	if err != nil {
		// decimal.String() siempre es un literal válido; sólo falla fuera del rango de Decimal128
		return bson.NewDecimal128(0, 0)
	}
	return v
}

func toDec128Ptr(d *decimal.Decimal) *bson.Decimal128 {
	if d == nil {
		return nil
	}
	v := toDec128(*d)
	return &v
}

func fromDec128(v bson.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func fromDec128Ptr(v *bson.Decimal128) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := fromDec128(*v)
	return &d
}

// normalizeMap convierte los subdocumentos decodificados (bson.D / bson.A) a
// map[string]interface{} / []interface{} para que se serialicen a JSON como objetos.
func normalizeMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case bson.M:
		return normalizeMap(t)
	case map[string]interface{}:
		return normalizeMap(t)
	case bson.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	case bson.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
